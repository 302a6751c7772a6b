package config

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/color"
	"github.com/matzehuels/chartkit/pkg/format"
	"github.com/matzehuels/chartkit/pkg/layout"
)

// Options returns the chart options shared by every chart in the file.
func (f *File) Options(logger *log.Logger) ([]chart.Option, error) {
	fm, err := format.NewFormatter(f.Locale)
	if err != nil {
		return nil, err
	}
	return []chart.Option{
		chart.WithLogger(logger),
		chart.WithFormatter(fm),
		chart.WithAnimations(f.AnimationsEnabled()),
		chart.WithDuration(f.Duration.Duration),
	}, nil
}

// options converts the frame fields into chart options.
func (fr Frame) options() ([]chart.Option, error) {
	scheme, err := color.Lookup(fr.Scheme)
	if err != nil {
		return nil, err
	}
	opts := []chart.Option{
		chart.WithName(fr.Name),
		chart.WithScheme(scheme),
	}
	if len(fr.Colors) > 0 {
		opts = append(opts, chart.WithCustomColors(fr.Colors))
	}
	if len(fr.Margin) == 4 {
		opts = append(opts, chart.WithMargins(layout.Margins{fr.Margin[0], fr.Margin[1], fr.Margin[2], fr.Margin[3]}))
	}
	return opts, nil
}

// Options returns the gauge-specific chart options.
func (g Gauge) Options() ([]chart.Option, error) {
	opts, err := g.Frame.options()
	if err != nil {
		return nil, err
	}
	return append(opts, chart.WithRange(g.Min, g.RangeMax())), nil
}

// Input returns the gauge's update input.
func (g Gauge) Input() chart.GaugeInput {
	return chart.GaugeInput{
		Width:    g.Width,
		Height:   g.Height,
		Value:    g.Value,
		Previous: g.Previous,
		Units:    g.Units,
	}
}

// Options returns the card-specific chart options.
func (c Card) Options() ([]chart.Option, error) {
	return c.Frame.options()
}

// Input returns the card's update input.
func (c Card) Input() chart.CardInput {
	return chart.CardInput{
		X:          c.X,
		Y:          c.Y,
		Width:      c.Width,
		Height:     c.Height,
		Label:      c.Label,
		Value:      c.Value,
		MedianSize: c.MedianSize,
	}
}

// Options returns the pie-specific chart options.
func (p Pie) Options() ([]chart.Option, error) {
	opts, err := p.Frame.options()
	if err != nil {
		return nil, err
	}
	opts = append(opts,
		chart.WithLabels(p.Labels),
		chart.WithExplodeSlices(p.Explode),
		chart.WithLegacyTransform(p.LegacyTransform),
	)
	if p.Doughnut {
		opts = append(opts, chart.WithDoughnut(p.ArcWidth))
	}
	if p.TrimLabels != nil || p.MaxLabelLength > 0 {
		opts = append(opts, chart.WithLabelTrim(p.TrimLabels == nil || *p.TrimLabels, p.MaxLabelLength))
	}
	return opts, nil
}

// Input returns the pie's update input.
func (p Pie) Input() chart.PieInput {
	data := make([]chart.Datum, len(p.Data))
	for i, d := range p.Data {
		data[i] = chart.Datum{Name: d.Name, Value: d.Value}
	}
	return chart.PieInput{Width: p.Width, Height: p.Height, Data: data}
}
