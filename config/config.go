// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingField reports a required entry key that is absent after
	// merging the common options.
	ErrMissingField = errors.New("missing required field")

	// ErrSplitNotConfigured reports a requested split with no entry in
	// the configuration.
	ErrSplitNotConfigured = errors.New("split not configured")
)

// Split names a data partition with its own configuration.
type Split string

const (
	Train      Split = "train"
	Validation Split = "validation"
)

func (s Split) IsValid() bool {
	return s == Train || s == Validation
}

// Entry configures one capture pair. Optional fields are pointers so an
// absent key is distinguishable from an explicit zero; defaults are
// resolved once, by the factory.
type Entry struct {
	// XPath and YPath locate the dry input and wet target captures.
	XPath string `yaml:"x_path"`
	YPath string `yaml:"y_path"`

	// YPreroll drops this many leading samples from the target file.
	YPreroll *int `yaml:"y_preroll"`

	// NX is the receptive field, NY the output chunk length per example.
	NX *int `yaml:"nx"`
	NY *int `yaml:"ny"`

	// Start, Stop, Delay and YScale feed dataset.Trim.
	Start  *int     `yaml:"start"`
	Stop   *int     `yaml:"stop"`
	Delay  *int     `yaml:"delay"`
	YScale *float64 `yaml:"y_scale"`
}

// SplitSpec is the per-split configuration shape: either a single entry
// or a sequence of entries. Exactly one of the fields is set after
// decoding; consumers switch on it once and never re-inspect YAML.
type SplitSpec struct {
	Single  *Entry
	Entries []Entry
}

func (s *SplitSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		e := &Entry{}
		if err := node.Decode(e); err != nil {
			return err
		}
		s.Single = e
		return nil
	case yaml.SequenceNode:
		var entries []Entry
		if err := node.Decode(&entries); err != nil {
			return err
		}
		s.Entries = entries
		return nil
	default:
		return fmt.Errorf("line %d: split must be a mapping or a sequence of mappings", node.Line)
	}
}

// IsZero reports whether the split was absent from the configuration.
func (s *SplitSpec) IsZero() bool {
	return s.Single == nil && s.Entries == nil
}

// Config is the top-level dataset configuration: one spec per split plus
// a common mapping merged under each entry.
type Config struct {
	Common     *Entry    `yaml:"common"`
	Train      SplitSpec `yaml:"train"`
	Validation SplitSpec `yaml:"validation"`
}

// Load reads the YAML configuration file at path.
// It is a convenience wrapper around LoadFromReader.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r. Unknown keys are
// rejected. Useful in tests where configs are constructed from string
// literals.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return cfg, nil
}

// split returns the SplitSpec for the named split.
func (c *Config) split(s Split) (*SplitSpec, error) {
	switch s {
	case Train:
		return &c.Train, nil
	case Validation:
		return &c.Validation, nil
	default:
		return nil, fmt.Errorf("unknown split %q", s)
	}
}

// merge overlays e on top of common: entry keys win, common fills the
// gaps. Single-level shallow merge.
func merge(common *Entry, e Entry) Entry {
	if common == nil {
		return e
	}
	if e.XPath == "" {
		e.XPath = common.XPath
	}
	if e.YPath == "" {
		e.YPath = common.YPath
	}
	if e.YPreroll == nil {
		e.YPreroll = common.YPreroll
	}
	if e.NX == nil {
		e.NX = common.NX
	}
	if e.NY == nil {
		e.NY = common.NY
	}
	if e.Start == nil {
		e.Start = common.Start
	}
	if e.Stop == nil {
		e.Stop = common.Stop
	}
	if e.Delay == nil {
		e.Delay = common.Delay
	}
	if e.YScale == nil {
		e.YScale = common.YScale
	}
	return e
}
