package sink

import (
	"encoding/json"

	"github.com/matzehuels/chartkit/pkg/chart"
)

// Document is an ordered collection of chart layouts.
type Document struct {
	Gauges []Named[chart.GaugeLayout]
	Cards  []Named[chart.CardLayout]
	Pies   []Named[chart.PieLayout]
}

// Named pairs a layout with the chart's name.
type Named[L any] struct {
	Name   string
	Layout L
}

// AddGauge appends a gauge layout.
func (d *Document) AddGauge(name string, l chart.GaugeLayout) {
	d.Gauges = append(d.Gauges, Named[chart.GaugeLayout]{name, l})
}

// AddCard appends a card layout.
func (d *Document) AddCard(name string, l chart.CardLayout) {
	d.Cards = append(d.Cards, Named[chart.CardLayout]{name, l})
}

// AddPie appends a pie layout.
func (d *Document) AddPie(name string, l chart.PieLayout) {
	d.Pies = append(d.Pies, Named[chart.PieLayout]{name, l})
}

// Len returns the number of charts in the document.
func (d Document) Len() int { return len(d.Gauges) + len(d.Cards) + len(d.Pies) }

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	version string
	locale  string
	scheme  string
	compact bool
}

// WithJSONVersion records the producing build in the output.
func WithJSONVersion(v string) JSONOption { return func(r *jsonRenderer) { r.version = v } }

// WithJSONLocale records the locale values were formatted with.
func WithJSONLocale(l string) JSONOption { return func(r *jsonRenderer) { r.locale = l } }

// WithJSONScheme records the default color scheme name.
func WithJSONScheme(s string) JSONOption { return func(r *jsonRenderer) { r.scheme = s } }

// WithJSONCompact disables indentation.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

type jsonOutput struct {
	Version string      `json:"version,omitempty"`
	Locale  string      `json:"locale,omitempty"`
	Scheme  string      `json:"scheme,omitempty"`
	Gauges  []jsonGauge `json:"gauges,omitempty"`
	Cards   []jsonCard  `json:"cards,omitempty"`
	Pies    []jsonPie   `json:"pies,omitempty"`
}

type jsonGauge struct {
	Name string `json:"name"`
	chart.GaugeLayout
	Transform          string `json:"transform"`
	TransformLine      string `json:"transform_line,omitempty"`
	ValueTextTransform string `json:"value_text_transform"`
	UnitsTextTransform string `json:"units_text_transform"`
}

type jsonCard struct {
	Name string `json:"name"`
	chart.CardLayout
	Transform     string `json:"transform"`
	TransformBand string `json:"transform_band"`
}

type jsonPie struct {
	Name string `json:"name"`
	chart.PieLayout
	Transform string `json:"transform"`
}

// RenderJSON exports the document as JSON, indented unless
// [WithJSONCompact] is given. Charts keep the order they were added in.
func RenderJSON(doc Document, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Version: r.version,
		Locale:  r.locale,
		Scheme:  r.scheme,
		Gauges:  buildJSONGauges(doc.Gauges),
		Cards:   buildJSONCards(doc.Cards),
		Pies:    buildJSONPies(doc.Pies),
	}

	if r.compact {
		return json.Marshal(out)
	}
	return json.MarshalIndent(out, "", "  ")
}

func buildJSONGauges(gauges []Named[chart.GaugeLayout]) []jsonGauge {
	if len(gauges) == 0 {
		return nil
	}
	out := make([]jsonGauge, len(gauges))
	for i, g := range gauges {
		out[i] = jsonGauge{
			Name:               g.Name,
			GaugeLayout:        g.Layout,
			Transform:          g.Layout.Transform(),
			ValueTextTransform: g.Layout.ValueTextTransform(),
			UnitsTextTransform: g.Layout.UnitsTextTransform(),
		}
		if g.Layout.HasPrevious {
			out[i].TransformLine = g.Layout.TransformLine()
		}
	}
	return out
}

func buildJSONCards(cards []Named[chart.CardLayout]) []jsonCard {
	if len(cards) == 0 {
		return nil
	}
	out := make([]jsonCard, len(cards))
	for i, c := range cards {
		out[i] = jsonCard{
			Name:          c.Name,
			CardLayout:    c.Layout,
			Transform:     c.Layout.Transform(),
			TransformBand: c.Layout.TransformBand(),
		}
	}
	return out
}

func buildJSONPies(pies []Named[chart.PieLayout]) []jsonPie {
	if len(pies) == 0 {
		return nil
	}
	out := make([]jsonPie, len(pies))
	for i, p := range pies {
		out[i] = jsonPie{
			Name:      p.Name,
			PieLayout: p.Layout,
			Transform: p.Layout.Transform(),
		}
	}
	return out
}
