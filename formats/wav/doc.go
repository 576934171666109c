// SPDX-License-Identifier: EPL-2.0

// Package wav handles the WAV container in two roles.
//
// It uses the github.com/go-audio libraries for WAV file handling.
//
// # Strict training I/O
//
// ReadMono and ReadPair load capture files for dataset construction.
// They enforce the capture convention of mono files at one sample rate
// and one bit depth across a session (48 kHz / 24-bit by default) and
// normalize fixed-point PCM to float64 in [-1, 1):
//
//	x, y, info, err := wav.ReadPair("dry.wav", "wet.wav", wav.DefaultRequirements(), 0)
//
// Write and WriteFile go the other way: clamp to [-1, 1], rescale to
// the target bit depth and encode, for listening to served windows.
//
// # Streaming decoding
//
// Decoder implements the audio.Decoder interface for the audition
// registry. Unlike the strict loader it accepts any PCM WAV; conforming
// the stream to the training format is the pipeline's job:
//
//	src, err := wav.Decoder{}.Decode(file)
package wav
