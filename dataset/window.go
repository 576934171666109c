// SPDX-License-Identifier: EPL-2.0

package dataset

import "fmt"

// geometry is the pure index arithmetic behind a paired-window dataset.
// nx is the receptive field (input window length), ny the output chunk
// length. It performs no I/O and holds no signal data.
type geometry struct {
	nx int
	ny int
}

// newGeometry validates nx and ny against a signal of sigLen samples.
// ny <= 0 means "one giant chunk": it defaults to sigLen-nx+1, the
// number of valid single-sample-output positions.
func newGeometry(nx, ny, sigLen int) (geometry, error) {
	if nx < 1 {
		return geometry{}, fmt.Errorf("%w: nx must be positive, got %d", ErrInvalidConfig, nx)
	}
	if nx > sigLen {
		return geometry{}, fmt.Errorf("%w: nx %d exceeds signal length %d",
			ErrInvalidConfig, nx, sigLen)
	}
	if ny <= 0 {
		ny = sigLen - nx + 1
	} else if ny > sigLen-nx+1 {
		return geometry{}, fmt.Errorf("%w: ny %d exceeds %d usable target samples",
			ErrInvalidConfig, ny, sigLen-nx+1)
	}
	return geometry{nx: nx, ny: ny}, nil
}

// count returns the number of examples in a signal of sigLen samples.
// Trailing samples that do not fill a complete ny-chunk are dropped.
func (g geometry) count(sigLen int) int {
	return (sigLen - g.nx + 1) / g.ny
}

// yOffset is where the output region starts inside each input window:
// the window carries nx-1 lookback samples before its first target sample.
func (g geometry) yOffset() int {
	return g.nx - 1
}

// xRange returns the [lo, hi) input window for example idx. The window
// has length nx+ny-1.
func (g geometry) xRange(idx int) (lo, hi int) {
	lo = idx * g.ny
	return lo, lo + g.nx + g.ny - 1
}

// yRange returns the [lo, hi) target window for example idx. Target
// windows tile the usable range contiguously: example idx+1 starts
// exactly where example idx ends.
func (g geometry) yRange(idx int) (lo, hi int) {
	lo = idx*g.ny + g.yOffset()
	return lo, lo + g.ny
}
