package config

import (
	"fmt"

	"github.com/matzehuels/chartkit/pkg/color"
	"github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/format"
)

// SetDefaults fills unset fields. Charts without a name are named after
// their kind and position, for example "gauge-1".
func (f *File) SetDefaults() {
	if f.Locale == "" {
		f.Locale = DefaultLocale
	}
	if f.Duration.Duration <= 0 {
		f.Duration.Duration = DefaultDuration
	}
	for i := range f.Gauges {
		g := &f.Gauges[i]
		g.Frame.setDefaults("gauge", i)
		if g.Max == nil {
			g.Max = new(float64)
			*g.Max = DefaultMax
		}
	}
	for i := range f.Cards {
		f.Cards[i].Frame.setDefaults("card", i)
	}
	for i := range f.Pies {
		f.Pies[i].Frame.setDefaults("pie", i)
	}
}

// setDefaults fills the frame fields shared by all chart kinds. Unnamed
// charts are called "<kind>-<n>", counting from 1.
func (fr *Frame) setDefaults(kind string, i int) {
	if fr.Name == "" {
		fr.Name = fmt.Sprintf("%s-%d", kind, i+1)
	}
	if fr.Width == 0 {
		fr.Width = DefaultWidth
	}
	if fr.Height == 0 {
		fr.Height = DefaultHeight
	}
	if fr.Scheme == "" {
		fr.Scheme = DefaultScheme
	}
}

// Validate checks the file for values no chart can render.
func (f *File) Validate() error {
	if _, err := format.NewFormatter(f.Locale); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "locale")
	}

	names := make(map[string]bool, f.Len())
	unique := func(name string) error {
		if names[name] {
			return errors.New(errors.ErrCodeInvalidConfig, "duplicate chart name %q", name)
		}
		names[name] = true
		return nil
	}

	for _, g := range f.Gauges {
		if err := g.Frame.validate(); err != nil {
			return err
		}
		if err := unique(g.Name); err != nil {
			return err
		}
		if g.Min > g.RangeMax() {
			return errors.New(errors.ErrCodeInvalidConfig, "%s: min %g exceeds max %g", g.Name, g.Min, g.RangeMax())
		}
	}
	for _, c := range f.Cards {
		if err := c.Frame.validate(); err != nil {
			return err
		}
		if err := unique(c.Name); err != nil {
			return err
		}
		if c.MedianSize < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s: median_size cannot be negative", c.Name)
		}
	}
	for _, p := range f.Pies {
		if err := p.Frame.validate(); err != nil {
			return err
		}
		if err := unique(p.Name); err != nil {
			return err
		}
		if p.ArcWidth < 0 || p.ArcWidth > 1 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s: arc_width must be within [0, 1]", p.Name)
		}
		for _, d := range p.Data {
			if d.Name == "" {
				return errors.New(errors.ErrCodeInvalidConfig, "%s: slice without a name", p.Name)
			}
		}
	}
	return nil
}

// validate checks dimensions, margins, the scheme and custom colours.
func (fr *Frame) validate() error {
	if err := errors.ValidateDimension(fr.Name+": width", fr.Width); err != nil {
		return err
	}
	if err := errors.ValidateDimension(fr.Name+": height", fr.Height); err != nil {
		return err
	}
	if n := len(fr.Margin); n != 0 && n != 4 {
		return errors.New(errors.ErrCodeInvalidConfig, "%s: margin needs 4 values (top, right, bottom, left), got %d", fr.Name, n)
	}
	for _, m := range fr.Margin {
		if err := errors.ValidateDimension(fr.Name+": margin", m); err != nil {
			return err
		}
	}
	if _, err := color.Lookup(fr.Scheme); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidScheme, err, "%s", fr.Name)
	}
	for key, c := range fr.Colors {
		if err := errors.ValidateHexColor(c); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidColor, err, "%s: color for %q", fr.Name, key)
		}
	}
	return nil
}
