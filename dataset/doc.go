// SPDX-License-Identifier: EPL-2.0

// Package dataset slices a matched pair of audio signals into training
// examples for an audio-effect model.
//
// A Pair holds a "dry" input signal x and a "wet" target signal y,
// recorded in lockstep. Each example is a pair of windows:
//
//	x window: nx+ny-1 samples (ny output positions plus nx-1 lookback)
//	y window: ny samples
//
// where nx is the model's receptive field and ny the number of target
// samples served per example. Consecutive examples' target windows tile
// the usable target range contiguously; trailing samples that do not
// fill a complete ny-chunk are dropped.
//
// # Building a dataset
//
//	ds, err := dataset.NewPair(x, y, dataset.Params{
//	    NX: 4096,
//	    NY: 16384,
//	    Trim: dataset.Trim{Delay: 3, YScale: 0.5},
//	})
//	for i := range ds.Len() {
//	    xw, yw, _ := ds.At(i)
//	    // feed xw, yw to the training loop
//	}
//
// Multiple captures combine into one index space with Concat:
//
//	all := dataset.NewConcat(ds1, ds2)
//
// # Alignment corrections
//
// Trim selects a [start, stop) sample range, corrects a known timing
// offset between the two recordings (Delay, in samples) and scales the
// target (YScale). All corrections are applied once at construction.
//
// # Concurrency
//
// Datasets are immutable after construction. At is a pure function of
// the stored buffers and may be called concurrently without locking.
package dataset
