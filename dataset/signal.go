// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// signalPair holds the aligned input/target buffers after trimming,
// delay correction and target scaling. Both buffers have equal length
// and are never mutated after construction.
type signalPair struct {
	x []float64
	y []float64
}

// Trim describes the sub-range and alignment corrections applied to a raw
// buffer pair before windowing. The zero value applies no correction.
type Trim struct {
	// Start and Stop bound the usable sample range. Semantics follow
	// slice-with-clamping rules: nil means the buffer end, a negative
	// value counts from the end, and out-of-range values clamp instead
	// of failing.
	Start *int
	Stop  *int

	// Delay is the timing offset between target and input, in samples.
	// Positive means the target lags the input: Delay samples are
	// dropped from the end of x and from the start of y. Negative means
	// the target leads and the mirrored trim applies. Zero is a no-op.
	Delay int

	// YScale multiplies every target sample. Zero means the default 1.0.
	YScale float64
}

// newSignalPair derives the aligned pair from two equal-length raw
// buffers. The raw buffers are never written to; x may alias xRaw, y is
// copied whenever scaling applies.
func newSignalPair(xRaw, yRaw []float64, trim Trim) (*signalPair, error) {
	x := clipRange(xRaw, trim.Start, trim.Stop)
	y := clipRange(yRaw, trim.Start, trim.Stop)

	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: input has %d samples, target has %d",
			ErrInvalidSignal, len(x), len(y))
	}

	if d := trim.Delay; d != 0 {
		if d >= len(x) || -d >= len(x) {
			return nil, fmt.Errorf("%w: delay %d leaves no samples in a %d-sample range",
				ErrInvalidConfig, d, len(x))
		}
		if d > 0 {
			x = x[:len(x)-d]
			y = y[d:]
		} else {
			x = x[-d:]
			y = y[:len(y)+d]
		}
	}

	scale := trim.YScale
	if scale == 0 {
		scale = 1.0
	}
	scaled := make([]float64, len(y))
	copy(scaled, y)
	if scale != 1.0 {
		floats.Scale(scale, scaled)
	}

	return &signalPair{x: x, y: scaled}, nil
}

// clipRange slices buf to [start:stop] with clamping. Negative bounds
// count from the end of buf, nil bounds mean the respective buffer end.
func clipRange(buf []float64, start, stop *int) []float64 {
	lo := resolveBound(start, 0, len(buf))
	hi := resolveBound(stop, len(buf), len(buf))
	if lo > hi {
		lo = hi
	}
	return buf[lo:hi]
}

func resolveBound(b *int, absent, n int) int {
	if b == nil {
		return absent
	}
	v := *b
	if v < 0 {
		v += n
	}
	if v < 0 {
		return 0
	}
	if v > n {
		return n
	}
	return v
}
