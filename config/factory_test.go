package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/ampset/ampset/dataset"
)

// rampLoader ignores paths and serves fixed-length ramps, recording the
// merged entries it was handed.
func rampLoader(n int, seen *[]Entry) LoadPairFunc {
	return func(e Entry) (x, y []float64, err error) {
		if seen != nil {
			*seen = append(*seen, e)
		}
		x = make([]float64, n)
		y = make([]float64, n)
		for i := range x {
			x[i] = float64(i)
			y[i] = float64(i)
		}
		return x, y, nil
	}
}

func loadConfig(t *testing.T, text string) *Config {
	t.Helper()
	cfg, err := LoadFromReader(strings.NewReader(text))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}
	return cfg
}

func TestBuild_SingleEntry(t *testing.T) {
	t.Parallel()

	cfg := loadConfig(t, `
validation:
  x_path: dry.wav
  y_path: wet.wav
  nx: 10
  ny: 5
`)

	ds, err := Build(cfg, Validation, rampLoader(100, nil))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if _, ok := ds.(*dataset.Pair); !ok {
		t.Fatalf("Build() returned %T, want *dataset.Pair", ds)
	}
	if ds.Len() != 18 {
		t.Errorf("Len() = %d, want 18", ds.Len())
	}
}

func TestBuild_EntrySequence(t *testing.T) {
	t.Parallel()

	cfg := loadConfig(t, `
common:
  nx: 10
  ny: 5
train:
  - x_path: a_dry.wav
    y_path: a_wet.wav
  - x_path: b_dry.wav
    y_path: b_wet.wav
`)

	var seen []Entry
	ds, err := Build(cfg, Train, rampLoader(100, &seen))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if _, ok := ds.(*dataset.Concat); !ok {
		t.Fatalf("Build() returned %T, want *dataset.Concat", ds)
	}
	if ds.Len() != 36 {
		t.Errorf("Len() = %d, want 36", ds.Len())
	}

	if len(seen) != 2 {
		t.Fatalf("loader called %d times, want 2", len(seen))
	}
	// The loader sees merged entries: per-entry paths, common geometry.
	if seen[0].XPath != "a_dry.wav" || seen[1].XPath != "b_dry.wav" {
		t.Errorf("loader saw paths %q, %q", seen[0].XPath, seen[1].XPath)
	}
	for i, e := range seen {
		if e.NX == nil || *e.NX != 10 {
			t.Errorf("entry %d missing common nx", i)
		}
	}
}

func TestBuild_CommonOverride(t *testing.T) {
	t.Parallel()

	cfg := loadConfig(t, `
common:
  y_scale: 0.5
  nx: 10
train:
  - x_path: a.wav
    y_path: b.wav
    y_scale: 2.0
`)

	var seen []Entry
	if _, err := Build(cfg, Train, rampLoader(100, &seen)); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if *seen[0].YScale != 2.0 {
		t.Errorf("YScale = %v, want entry override 2.0", *seen[0].YScale)
	}
}

func TestBuild_MissingRequiredKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{"no x_path", "train:\n  y_path: wet.wav\n  nx: 10\n"},
		{"no y_path", "train:\n  x_path: dry.wav\n  nx: 10\n"},
		{"no nx", "train:\n  x_path: dry.wav\n  y_path: wet.wav\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := loadConfig(t, tt.text)
			_, err := Build(cfg, Train, rampLoader(100, nil))
			if !errors.Is(err, ErrMissingField) {
				t.Errorf("Build() error = %v, want ErrMissingField", err)
			}
		})
	}
}

func TestBuild_SplitNotConfigured(t *testing.T) {
	t.Parallel()

	cfg := loadConfig(t, "train:\n  x_path: a.wav\n  y_path: b.wav\n  nx: 10\n")
	_, err := Build(cfg, Validation, rampLoader(100, nil))
	if !errors.Is(err, ErrSplitNotConfigured) {
		t.Errorf("Build() error = %v, want ErrSplitNotConfigured", err)
	}
}

func TestBuild_GeometryErrorPropagates(t *testing.T) {
	t.Parallel()

	cfg := loadConfig(t, "train:\n  x_path: a.wav\n  y_path: b.wav\n  nx: 500\n")
	_, err := Build(cfg, Train, rampLoader(100, nil))
	if !errors.Is(err, dataset.ErrInvalidConfig) {
		t.Errorf("Build() error = %v, want dataset.ErrInvalidConfig", err)
	}
}

func TestEntryParams_Defaults(t *testing.T) {
	t.Parallel()

	nx := 64
	p := Entry{NX: &nx}.Params()
	if p.NX != 64 || p.NY != 0 {
		t.Errorf("Params = %+v, want NX 64, NY 0 (auto)", p)
	}
	if p.Trim.YScale != 1.0 {
		t.Errorf("Trim.YScale = %v, want default 1.0", p.Trim.YScale)
	}
	if p.Trim.Delay != 0 {
		t.Errorf("Trim.Delay = %v, want 0", p.Trim.Delay)
	}
}
