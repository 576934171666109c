// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"

	"github.com/ampset/ampset/dataset"
)

// LoadPairFunc loads the raw sample buffers for one merged entry. It
// decouples dataset construction from file I/O: the WAV loader is the
// usual implementation, tests inject fixtures directly.
type LoadPairFunc func(e Entry) (x, y []float64, err error)

// Build constructs the dataset for a split: one dataset.Pair when the
// split is a single entry, a dataset.Concat over per-entry children when
// it is a sequence. The common options merge under each entry first.
func Build(cfg *Config, split Split, load LoadPairFunc) (dataset.Dataset, error) {
	spec, err := cfg.split(split)
	if err != nil {
		return nil, err
	}
	if spec.IsZero() {
		return nil, fmt.Errorf("%w: %q", ErrSplitNotConfigured, split)
	}

	if spec.Single != nil {
		return buildOne(cfg.Common, *spec.Single, split, load)
	}

	children := make([]dataset.Dataset, 0, len(spec.Entries))
	for i, e := range spec.Entries {
		child, err := buildOne(cfg.Common, e, split, load)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", split, i, err)
		}
		children = append(children, child)
	}
	return dataset.NewConcat(children...), nil
}

func buildOne(common *Entry, e Entry, split Split, load LoadPairFunc) (*dataset.Pair, error) {
	e = merge(common, e)
	if err := validate(e, split); err != nil {
		return nil, err
	}

	x, y, err := load(e)
	if err != nil {
		return nil, err
	}

	return dataset.NewPair(x, y, e.Params())
}

// validate checks required keys before any I/O happens.
func validate(e Entry, split Split) error {
	if e.XPath == "" {
		return fmt.Errorf("%s: x_path: %w", split, ErrMissingField)
	}
	if e.YPath == "" {
		return fmt.Errorf("%s: y_path: %w", split, ErrMissingField)
	}
	if e.NX == nil {
		return fmt.Errorf("%s: nx: %w", split, ErrMissingField)
	}
	return nil
}

// Params resolves the entry's window and trim options into dataset
// parameters, applying the documented defaults: ny absent means one
// giant chunk, delay absent means none, y_scale absent means 1.0.
func (e Entry) Params() dataset.Params {
	p := dataset.Params{
		Trim: dataset.Trim{
			Start:  e.Start,
			Stop:   e.Stop,
			YScale: 1.0,
		},
	}
	if e.NX != nil {
		p.NX = *e.NX
	}
	if e.NY != nil {
		p.NY = *e.NY
	}
	if e.Delay != nil {
		p.Trim.Delay = *e.Delay
	}
	if e.YScale != nil {
		p.Trim.YScale = *e.YScale
	}
	return p
}
