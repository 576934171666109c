// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files for the audition pipeline.
//
// This package uses github.com/go-audio/aiff to decode AIFF files,
// normalizing whatever bit depth the file carries to float64 in [-1, 1):
//
//	src, err := aiff.Decoder{}.Decode(file)
package aiff
