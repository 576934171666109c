// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile         = errors.New("not a WAV file")
	ErrNotMono            = errors.New("training captures must be mono")
	ErrSampleRateMismatch = errors.New("sample rate mismatch")
	ErrBitDepthMismatch   = errors.New("bit depth mismatch")
	ErrLengthMismatch     = errors.New("input and target lengths differ")
	ErrPrerollTooLong     = errors.New("preroll exceeds signal length")
)
