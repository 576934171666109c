// SPDX-License-Identifier: EPL-2.0

package dataset

// Dataset is a random-access collection of (input window, target window)
// training examples. Implementations are immutable after construction,
// so At is safe for unsynchronized concurrent use.
type Dataset interface {
	// Len returns the number of examples.
	Len() int
	// At returns the example at idx. The returned slices are views into
	// the dataset's buffers and must not be modified by the caller.
	At(idx int) (x, y []float64, err error)
}

// Params configures a Pair dataset.
type Params struct {
	// NX is the receptive field: the number of trailing input samples a
	// model consumes to produce one output sample. Required.
	NX int
	// NY is the output chunk length per example. Zero means one giant
	// chunk covering every valid output position.
	NY int
	// Trim is applied to the raw buffers before windowing.
	Trim Trim
}

// Pair serves overlapping fixed-length windows from a matched pair of
// input ("dry") and target ("wet") signals. Each example idx yields an
// input window of nx+ny-1 samples and a target window of ny samples;
// consecutive target windows tile the usable target range with no gap
// and no overlap.
type Pair struct {
	sig *signalPair
	geo geometry
}

// NewPair builds a Pair from two equal-length raw sample buffers.
// Construction applies the trim, validates the geometry eagerly and
// never mutates the raw buffers.
func NewPair(xRaw, yRaw []float64, p Params) (*Pair, error) {
	sig, err := newSignalPair(xRaw, yRaw, p.Trim)
	if err != nil {
		return nil, err
	}
	geo, err := newGeometry(p.NX, p.NY, len(sig.x))
	if err != nil {
		return nil, err
	}
	return &Pair{sig: sig, geo: geo}, nil
}

// Len returns the number of examples. Trailing samples that do not fill
// a complete ny-chunk are silently dropped, never padded.
func (d *Pair) Len() int {
	return d.geo.count(len(d.sig.x))
}

// At returns the input and target windows for example idx.
func (d *Pair) At(idx int) (x, y []float64, err error) {
	if idx < 0 || idx >= d.Len() {
		return nil, nil, &IndexError{Index: idx, Len: d.Len()}
	}
	xlo, xhi := d.geo.xRange(idx)
	ylo, yhi := d.geo.yRange(idx)
	return d.sig.x[xlo:xhi], d.sig.y[ylo:yhi], nil
}

// NX returns the receptive field length.
func (d *Pair) NX() int { return d.geo.nx }

// NY returns the output chunk length.
func (d *Pair) NY() int { return d.geo.ny }

// X returns the trimmed input signal. Callers must not modify it.
func (d *Pair) X() []float64 { return d.sig.x }

// Y returns the trimmed, scaled target signal. Callers must not modify it.
func (d *Pair) Y() []float64 { return d.sig.y }
