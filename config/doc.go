// SPDX-License-Identifier: EPL-2.0

// Package config maps YAML dataset descriptions to constructed datasets.
//
// A configuration names one or more capture pairs per split, plus a
// common mapping merged under every entry (entry keys win):
//
//	common:
//	  nx: 4096
//	  ny: 16384
//	train:
//	  - x_path: dry_a.wav
//	    y_path: wet_a.wav
//	  - x_path: dry_b.wav
//	    y_path: wet_b.wav
//	    delay: 12
//	validation:
//	  x_path: dry_val.wav
//	  y_path: wet_val.wav
//
// A split holding a single mapping builds one dataset.Pair; a split
// holding a sequence builds one Pair per entry, concatenated. Build
// takes a LoadPairFunc so file I/O stays outside this package; the root
// ampset package wires in the strict WAV loader.
package config
