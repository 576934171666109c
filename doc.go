// SPDX-License-Identifier: EPL-2.0

// Package ampset prepares paired audio captures for training an
// audio-effect model: a "dry" input signal and the "wet" signal it
// produced through the device being modeled, recorded in lockstep and
// sliced into overlapping fixed-length training windows.
//
// # Quick Start
//
// Describe the captures in YAML and load a split:
//
//	common:
//	  nx: 4096
//	  ny: 16384
//	train:
//	  - x_path: dry_a.wav
//	    y_path: wet_a.wav
//	  - x_path: dry_b.wav
//	    y_path: wet_b.wav
//	validation:
//	  x_path: dry_val.wav
//	  y_path: wet_val.wav
//
//	ds, err := ampset.LoadSplit("captures.yml", config.Train)
//
// Every example i in [0, ds.Len()) is an (input window, target window)
// pair; ordering and shuffling are the training loop's business.
//
// # Packages
//
// The work happens in the subpackages:
//   - dataset: the windowed-pairing core with trim, delay correction,
//     target scaling and the index arithmetic
//   - config: YAML configuration and the split factory
//   - formats/wav: strict capture I/O (mono, pinned rate and bit
//     depth) plus a streaming decoder
//   - formats/mp3, formats/vorbis, formats/aiff: audition decoders
//   - audio: streaming pipeline with resampler, mono mixer, registry
//
// # Auditioning rough material
//
// Capture files that are not conformant training WAVs can still be
// pulled in for quick experiments:
//
//	samples, err := ampset.ReadAudition("reference.mp3", 48000)
//
// The result is mono at the requested rate, ready for dataset.NewPair.
package ampset
