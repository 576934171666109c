// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files for the audition pipeline.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// MP3 material is never training data itself (lossy compression smears
// the transient detail a capture needs) but it is good enough for
// auditioning a reference signal before a proper capture session:
//
//	src, err := mp3.Decoder{}.Decode(file)
//	conformed := audio.NewMonoMixer(audio.NewResampler(src, 48000))
package mp3
