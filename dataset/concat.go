// SPDX-License-Identifier: EPL-2.0

package dataset

// Concat presents an ordered sequence of datasets as one virtual index
// space, concatenated by length in declaration order. Children are
// immutable once composed; there is no rebalancing or caching.
type Concat struct {
	children []Dataset
	total    int
}

// NewConcat composes children into a single dataset.
func NewConcat(children ...Dataset) *Concat {
	total := 0
	for _, c := range children {
		total += c.Len()
	}
	return &Concat{children: children, total: total}
}

// Len returns the sum of the children's lengths.
func (c *Concat) Len() int { return c.total }

// At locates the child owning idx by scanning cumulative lengths in
// declaration order and delegates with the residual index.
func (c *Concat) At(idx int) (x, y []float64, err error) {
	if idx < 0 {
		return nil, nil, &IndexError{Index: idx, Len: c.total}
	}
	rest := idx
	for _, child := range c.children {
		if rest < child.Len() {
			return child.At(rest)
		}
		rest -= child.Len()
	}
	return nil, nil, &IndexError{Index: idx, Len: c.total}
}
