package dataset

import (
	"errors"
	"testing"
)

func TestNewGeometry_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		nx, ny  int
		sigLen  int
		wantErr bool
	}{
		{"valid", 10, 5, 100, false},
		{"ny defaulted", 10, 0, 100, false},
		{"nx equals length", 100, 0, 100, false},
		{"nx zero", 0, 5, 100, true},
		{"nx exceeds length", 101, 5, 100, true},
		{"ny at limit", 10, 91, 100, false},
		{"ny exceeds limit", 10, 92, 100, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := newGeometry(tt.nx, tt.ny, tt.sigLen)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("newGeometry() error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Errorf("newGeometry() error = %v", err)
			}
		})
	}
}

func TestGeometry_DefaultNY(t *testing.T) {
	t.Parallel()

	g, err := newGeometry(10, 0, 100)
	if err != nil {
		t.Fatalf("newGeometry() error = %v", err)
	}
	if g.ny != 91 {
		t.Errorf("ny = %d, want 91", g.ny)
	}
	if g.count(100) != 1 {
		t.Errorf("count = %d, want 1", g.count(100))
	}
}

func TestGeometry_Count(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		nx, ny int
		sigLen int
		want   int
	}{
		// 91 usable output positions hold 18 full chunks of 5; the
		// trailing sample is dropped.
		{"truncated tail", 10, 5, 100, 18},
		{"even tiling", 1, 5, 100, 20},
		{"single sample outputs", 10, 1, 100, 91},
		{"chunk equals usable range", 10, 91, 100, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g, err := newGeometry(tt.nx, tt.ny, tt.sigLen)
			if err != nil {
				t.Fatalf("newGeometry() error = %v", err)
			}
			if got := g.count(tt.sigLen); got != tt.want {
				t.Errorf("count = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGeometry_Ranges(t *testing.T) {
	t.Parallel()

	g, err := newGeometry(10, 5, 100)
	if err != nil {
		t.Fatalf("newGeometry() error = %v", err)
	}

	for idx := 0; idx < g.count(100); idx++ {
		xlo, xhi := g.xRange(idx)
		ylo, yhi := g.yRange(idx)

		if xhi-xlo != g.nx+g.ny-1 {
			t.Fatalf("idx %d: x window length = %d, want %d", idx, xhi-xlo, g.nx+g.ny-1)
		}
		if yhi-ylo != g.ny {
			t.Fatalf("idx %d: y window length = %d, want %d", idx, yhi-ylo, g.ny)
		}
		if ylo != xlo+g.yOffset() {
			t.Fatalf("idx %d: y starts at %d, want x start %d + offset %d", idx, ylo, xlo, g.yOffset())
		}
	}
}

func TestGeometry_TargetWindowsTile(t *testing.T) {
	t.Parallel()

	g, err := newGeometry(10, 5, 100)
	if err != nil {
		t.Fatalf("newGeometry() error = %v", err)
	}

	// Consecutive target windows partition the usable range: no gap, no
	// overlap.
	for idx := 1; idx < g.count(100); idx++ {
		_, prevHi := g.yRange(idx - 1)
		lo, _ := g.yRange(idx)
		if lo != prevHi {
			t.Fatalf("idx %d: y window starts at %d, previous ended at %d", idx, lo, prevHi)
		}
	}
}
