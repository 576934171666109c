// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"os"

	gowav "github.com/go-audio/wav"

	"github.com/ampset/ampset/utils"
)

// Info describes the format of a decoded capture file.
type Info struct {
	BitDepth   int
	SampleRate int
}

// Requirements pins the format every training capture must share. Reamp
// captures are conventionally rendered at 48 kHz / 24-bit, the defaults.
type Requirements struct {
	SampleRate int
	BitDepth   int
}

// DefaultRequirements returns the conventional capture format:
// mono 48 kHz, 24-bit PCM.
func DefaultRequirements() Requirements {
	return Requirements{SampleRate: 48000, BitDepth: 24}
}

// ReadMono decodes the WAV file at path into normalized float64 samples
// in [-1, 1). The file must be mono and match req; a zero field in req
// accepts any value for that property.
func ReadMono(path string, req Requirements) ([]float64, Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Info{}, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	dec := gowav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, Info{}, fmt.Errorf("%q: %w", path, ErrNotWavFile)
	}

	info := Info{
		BitDepth:   int(dec.BitDepth),
		SampleRate: int(dec.SampleRate),
	}
	if dec.NumChans != 1 {
		return nil, info, fmt.Errorf("%q has %d channels: %w", path, dec.NumChans, ErrNotMono)
	}
	if req.SampleRate != 0 && info.SampleRate != req.SampleRate {
		return nil, info, fmt.Errorf("%q is %d Hz, need %d Hz: %w",
			path, info.SampleRate, req.SampleRate, ErrSampleRateMismatch)
	}
	if req.BitDepth != 0 && info.BitDepth != req.BitDepth {
		return nil, info, fmt.Errorf("%q is %d-bit, need %d-bit: %w",
			path, info.BitDepth, req.BitDepth, ErrBitDepthMismatch)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, info, fmt.Errorf("decode %q: %w", path, err)
	}

	out := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		out[i] = utils.PCMToFloat(v, info.BitDepth)
	}
	return out, info, nil
}

// ReadPair loads a matched capture pair: the dry input at xPath and the
// wet target at yPath. yPreroll leading samples are dropped from the
// target before matching. The target must share the input's format and,
// after preroll, its exact length; mismatches fail here so the dataset
// core never sees unaligned buffers.
func ReadPair(xPath, yPath string, req Requirements, yPreroll int) (x, y []float64, info Info, err error) {
	x, info, err = ReadMono(xPath, req)
	if err != nil {
		return nil, nil, Info{}, err
	}

	// The target must match the input's actual format, not just the
	// requirements, which may leave properties unpinned.
	y, _, err = ReadMono(yPath, Requirements{
		SampleRate: info.SampleRate,
		BitDepth:   info.BitDepth,
	})
	if err != nil {
		return nil, nil, Info{}, err
	}

	if yPreroll > 0 {
		if yPreroll > len(y) {
			return nil, nil, Info{}, fmt.Errorf("%q: preroll %d > %d samples: %w",
				yPath, yPreroll, len(y), ErrPrerollTooLong)
		}
		y = y[yPreroll:]
	}

	if len(x) != len(y) {
		return nil, nil, Info{}, fmt.Errorf("%q has %d samples, %q has %d: %w",
			xPath, len(x), yPath, len(y), ErrLengthMismatch)
	}
	return x, y, info, nil
}
