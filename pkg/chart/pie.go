package chart

import (
	"fmt"
	"math"
	"time"

	"github.com/matzehuels/chartkit/pkg/color"
	"github.com/matzehuels/chartkit/pkg/layout"
	"github.com/matzehuels/chartkit/pkg/observability"
	"github.com/matzehuels/chartkit/pkg/radial"
)

const pieChartType = "pie"

var (
	pieMargins      = layout.Margins{20, 20, 20, 20}
	pieLabelMargins = layout.Margins{30, 80, 30, 80}
)

// Datum is one named value.
type Datum struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// PieInput is the data for one pie update.
type PieInput struct {
	Width  float64
	Height float64
	Data   []Datum
}

// SliceLayout is one drawn slice.
type SliceLayout struct {
	radial.Slice
	Name        string                `json:"name"`
	Color       string                `json:"color"`
	InnerRadius float64               `json:"inner_radius"`
	OuterRadius float64               `json:"outer_radius"`
	Label       *radial.LabelGeometry `json:"label,omitempty"`
}

// PieLayout is the geometry of a pie or doughnut chart.
type PieLayout struct {
	Dims        layout.ViewDimensions `json:"dims"`
	Margins     layout.Margins        `json:"margins"`
	CenterX     float64               `json:"center_x"`
	CenterY     float64               `json:"center_y"`
	OuterRadius float64               `json:"outer_radius"`
	InnerRadius float64               `json:"inner_radius"`
	Slices      []SliceLayout         `json:"slices"`
}

// Transform moves the origin to the pie centre.
func (l PieLayout) Transform() string {
	return fmt.Sprintf("translate(%s, %s)", num(l.CenterX), num(l.CenterY))
}

// PieChart lays out slices in data order with optional outside labels.
// It keeps no state between updates.
type PieChart struct {
	s settings
}

// NewPieChart creates a pie chart.
func NewPieChart(opts ...Option) *PieChart {
	return &PieChart{s: newSettings(opts)}
}

// Update lays the pie out for in.
func (p *PieChart) Update(in PieInput) PieLayout {
	start := time.Now()

	m := pieMargins
	switch {
	case p.s.margins != nil:
		m = *p.s.margins
	case p.s.labels:
		m = pieLabelMargins
	}
	dims := layout.Calculate(in.Width, in.Height, m)
	cx, cy := dims.Center(m)

	outer := math.Min(dims.Width, dims.Height)
	if p.s.labels {
		outer /= 3
	} else {
		outer /= 2
	}
	inner := 0.0
	if p.s.doughnut {
		inner = outer * (1 - p.s.arcWidth)
	}

	names := make([]string, len(in.Data))
	values := make([]float64, len(in.Data))
	maxValue := 0.0
	for i, d := range in.Data {
		names[i] = d.Name
		values[i] = d.Value
		maxValue = math.Max(maxValue, d.Value)
	}

	colorDomain := p.s.colorDomain
	if colorDomain == nil {
		colorDomain = names
	}
	enc := color.NewEncoder(p.s.scheme.WithKind(color.Ordinal), colorDomain, color.WithOverrides(p.s.customColors))

	slices := radial.Pie(values, names...)
	var positions []radial.Point
	if p.s.labels {
		positions = radial.LabelPositions(slices, outer)
	}
	labelOpts := radial.Options{
		Radius:          outer,
		Explode:         p.s.explode,
		Max:             maxValue,
		Trim:            p.s.trimLabels,
		TrimSize:        p.s.maxLabelLength,
		LegacyTransform: p.s.legacyTransform,
	}

	l := PieLayout{
		Dims:        dims,
		Margins:     m,
		CenterX:     cx,
		CenterY:     cy,
		OuterRadius: outer,
		InnerRadius: inner,
		Slices:      make([]SliceLayout, len(slices)),
	}
	for i, s := range slices {
		sl := SliceLayout{
			Slice:       s,
			Name:        names[i],
			Color:       resolveColor(enc, p.s.logger, pieChartType, names[i]),
			InnerRadius: inner,
			OuterRadius: outer,
		}
		if p.s.explode && maxValue > 0 {
			sl.OuterRadius = outer * s.Value / maxValue
		}
		if p.s.labels && radial.LabelVisible(s) {
			g := radial.PlaceLabel(s, positions[i], labelOpts)
			sl.Label = &g
		}
		l.Slices[i] = sl
	}

	p.s.logger.Debug("pie updated", "name", p.s.name, "slices", len(slices), "radius", outer)
	observability.Chart().OnUpdate(pieChartType, p.s.name, time.Since(start))
	return l
}
