// SPDX-License-Identifier: EPL-2.0

package ampset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ampset/ampset/audio"
	"github.com/ampset/ampset/config"
	"github.com/ampset/ampset/dataset"
	"github.com/ampset/ampset/formats/aiff"
	"github.com/ampset/ampset/formats/mp3"
	"github.com/ampset/ampset/formats/vorbis"
	"github.com/ampset/ampset/formats/wav"
)

// LoadSplit reads the YAML configuration at configPath and builds the
// dataset for the named split, loading every capture pair with the
// strict WAV loader at the default requirements (mono 48 kHz, 24-bit).
//
// This is the one-call path from a config file to a training-ready
// dataset:
//
//	ds, err := ampset.LoadSplit("captures.yml", config.Train)
//	if err != nil {
//	    panic(err)
//	}
//	for i := range ds.Len() {
//	    x, y, _ := ds.At(i)
//	    // feed x, y to the training loop
//	}
func LoadSplit(configPath string, split config.Split) (dataset.Dataset, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return BuildSplit(cfg, split, wav.DefaultRequirements())
}

// BuildSplit builds the dataset for a split from an already-parsed
// configuration, enforcing req on every capture file.
func BuildSplit(cfg *config.Config, split config.Split, req wav.Requirements) (dataset.Dataset, error) {
	load := func(e config.Entry) (x, y []float64, err error) {
		preroll := 0
		if e.YPreroll != nil {
			preroll = *e.YPreroll
		}
		x, y, _, err = wav.ReadPair(e.XPath, e.YPath, req, preroll)
		return x, y, err
	}
	return config.Build(cfg, split, load)
}

// DefaultRegistry returns a decoder registry with every built-in format
// registered: wav, aiff, mp3 and ogg.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	return reg
}

// ReadAudition decodes any supported capture file and conforms it to
// mono at targetRate: decode, resample when the rates differ, fold to
// one channel, collect. The result feeds dataset.NewPair directly.
//
// Audition material is for rough experiments; training captures should
// go through the strict loader instead.
func ReadAudition(path string, targetRate int) ([]float64, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	dec, ok := DefaultRegistry().Get(ext)
	if !ok {
		return nil, fmt.Errorf("unsupported format %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	defer src.Close()

	var conformed audio.Source = src
	if src.SampleRate() != targetRate {
		conformed = audio.NewResampler(conformed, targetRate)
	}
	conformed = audio.NewMonoMixer(conformed)

	out, err := audio.Collect(conformed, 4096)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return out, nil
}
