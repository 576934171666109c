// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ampset/ampset/utils"
)

// Write encodes samples as a mono PCM WAV at the given rate and bit
// depth. Samples are clamped to [-1, 1] and rescaled to fixed point.
// Intended for inspection output, e.g. listening to a served window.
func Write(ws io.WriteSeeker, samples []float64, sampleRate, bitDepth int) error {
	enc := gowav.NewEncoder(ws, sampleRate, bitDepth, 1, 1)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = utils.FloatToPCM(s, bitDepth)
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}
	return nil
}

// WriteFile writes samples to a new WAV file at path. See Write.
func WriteFile(path string, samples []float64, sampleRate, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}

	if err := Write(f, samples, sampleRate, bitDepth); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", path, err)
	}
	return nil
}
