// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files for the audition pipeline.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// files. Like MP3, Vorbis material serves auditioning and rough
// conversion, not training capture:
//
//	src, err := vorbis.Decoder{}.Decode(file)
package vorbis
