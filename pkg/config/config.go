// Package config loads chart definitions from TOML files.
//
// A file lists any number of gauges, cards and pies:
//
//	locale = "de"
//	duration = "750ms"
//
//	[[gauge]]
//	name = "cpu"
//	width = 400
//	height = 120
//	value = 42.5
//	previous = 30
//	units = "%"
//
//	[[card]]
//	name = "revenue"
//	label = "Revenue"
//	value = 1234.5
//
//	[[pie]]
//	name = "share"
//	labels = true
//	data = [{ name = "A", value = 30 }, { name = "B", value = 70 }]
//
// The same definitions can be written as YAML, with gauge, card and pie
// lists. [Load] picks the format from the file extension.
//
// [Load], [Parse] and [ParseYAML] decode, apply defaults and validate in one
// step, so a returned *File is always usable. Unknown keys are rejected.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/chartkit/pkg/errors"
)

// Defaults applied by SetDefaults.
const (
	DefaultLocale   = "en"
	DefaultScheme   = "cool"
	DefaultDuration = time.Second
	DefaultWidth    = 400
	DefaultHeight   = 300
	DefaultMax      = 100
)

// File is a decoded chart definition file.
type File struct {
	Locale     string   `toml:"locale" yaml:"locale"`
	Animations *bool    `toml:"animations" yaml:"animations"`
	Duration   Duration `toml:"duration" yaml:"duration"`

	Gauges []Gauge `toml:"gauge" yaml:"gauge"`
	Cards  []Card  `toml:"card" yaml:"card"`
	Pies   []Pie   `toml:"pie" yaml:"pie"`
}

// Frame holds the settings every chart shares.
type Frame struct {
	Name   string            `toml:"name" yaml:"name"`
	Width  float64           `toml:"width" yaml:"width"`
	Height float64           `toml:"height" yaml:"height"`
	Margin []float64         `toml:"margin" yaml:"margin"`
	Scheme string            `toml:"scheme" yaml:"scheme"`
	Colors map[string]string `toml:"colors" yaml:"colors"`
}

// Gauge defines a linear gauge.
type Gauge struct {
	Frame `yaml:",inline"`

	Value    float64  `toml:"value" yaml:"value"`
	Previous *float64 `toml:"previous" yaml:"previous"`
	Units    string   `toml:"units" yaml:"units"`
	Min      float64  `toml:"min" yaml:"min"`
	Max      *float64 `toml:"max" yaml:"max"` // DefaultMax when unset
}

// RangeMax returns the configured upper bound, or DefaultMax when max is
// not set.
func (g Gauge) RangeMax() float64 {
	if g.Max == nil {
		return DefaultMax
	}
	return *g.Max
}

// Card defines a number card.
type Card struct {
	Frame `yaml:",inline"`

	X          float64  `toml:"x" yaml:"x"`
	Y          float64  `toml:"y" yaml:"y"`
	Label      string   `toml:"label" yaml:"label"`
	Value      *float64 `toml:"value" yaml:"value"`
	MedianSize int      `toml:"median_size" yaml:"median_size"`
}

// Pie defines a pie or doughnut chart.
type Pie struct {
	Frame `yaml:",inline"`

	Data            []Slice `toml:"data" yaml:"data"`
	Labels          bool    `toml:"labels" yaml:"labels"`
	Doughnut        bool    `toml:"doughnut" yaml:"doughnut"`
	ArcWidth        float64 `toml:"arc_width" yaml:"arc_width"`
	Explode         bool    `toml:"explode" yaml:"explode"`
	TrimLabels      *bool   `toml:"trim_labels" yaml:"trim_labels"`
	MaxLabelLength  int     `toml:"max_label_length" yaml:"max_label_length"`
	LegacyTransform bool    `toml:"legacy_transform" yaml:"legacy_transform"`
}

// Slice is one pie value.
type Slice struct {
	Name  string  `toml:"name" yaml:"name"`
	Value float64 `toml:"value" yaml:"value"`
}

// Duration is a time.Duration written as a string such as "1.5s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Load reads and parses the file at path: YAML for .yaml and .yml files,
// TOML otherwise.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	parse := Parse
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parse = ParseYAML
	}
	f, err := parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "load %s", path)
	}
	return f, nil
}

// Parse decodes TOML data, applies defaults and validates the result.
func Parse(data []byte) (*File, error) {
	var f File
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode chart definitions")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}

	return finish(&f)
}

// ParseYAML decodes YAML data, applies defaults and validates the result.
func ParseYAML(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode chart definitions")
	}
	return finish(&f)
}

// finish applies defaults and validates a decoded file.
func finish(f *File) (*File, error) {
	f.SetDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Encode writes f as TOML.
func (f *File) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode chart definitions")
	}
	return buf.Bytes(), nil
}

// Len returns the number of charts defined.
func (f *File) Len() int {
	return len(f.Gauges) + len(f.Cards) + len(f.Pies)
}

// AnimationsEnabled reports whether count animations should run.
func (f *File) AnimationsEnabled() bool {
	return f.Animations == nil || *f.Animations
}
