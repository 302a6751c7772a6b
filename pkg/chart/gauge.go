package chart

import (
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/matzehuels/chartkit/pkg/color"
	"github.com/matzehuels/chartkit/pkg/layout"
	"github.com/matzehuels/chartkit/pkg/observability"
	"github.com/matzehuels/chartkit/pkg/scale"
	"github.com/matzehuels/chartkit/pkg/schedule"
	"github.com/matzehuels/chartkit/pkg/textfit"
)

const (
	gaugeChartType = "linear-gauge"

	// TextSettleDelay is how long a gauge waits after an update before it
	// measures its text.
	TextSettleDelay = 50 * time.Millisecond

	gaugeFontSize   = 12
	gaugeTextOffset = 15
	gaugeBarHeight  = 3
)

// GaugeInput is the data for one gauge update.
type GaugeInput struct {
	Width    float64
	Height   float64
	Value    float64
	Previous *float64 // optional comparison value
	Units    string
}

// GaugeLayout is the geometry of a linear gauge.
type GaugeLayout struct {
	Dims         layout.ViewDimensions `json:"dims"`
	Margins      layout.Margins        `json:"margins"`
	Domain       scale.Domain          `json:"domain"`
	Value        float64               `json:"value"`
	DisplayValue string                `json:"display_value"`
	Units        string                `json:"units"`
	Color        string                `json:"color"`

	// The background bar spans the full inner width; the value bar starts
	// at the same point and is BarWidth long.
	BarX      float64 `json:"bar_x"`
	BarY      float64 `json:"bar_y"`
	BarHeight float64 `json:"bar_height"`
	BarWidth  float64 `json:"bar_width"`

	HasPrevious bool    `json:"has_previous"`
	PreviousX   float64 `json:"previous_x,omitempty"`

	CenterX    float64 `json:"center_x"`
	CenterY    float64 `json:"center_y"`
	ValueScale float64 `json:"value_scale"`
	UnitsScale float64 `json:"units_scale"`
}

// Transform positions the value and units text group.
func (l GaugeLayout) Transform() string {
	return fmt.Sprintf("translate(%s, %s)", num(l.CenterX), num(l.CenterY))
}

// TransformLine positions the previous value marker.
func (l GaugeLayout) TransformLine() string {
	return fmt.Sprintf("translate(%s, %s)", num(l.PreviousX), num(l.CenterY))
}

// ValueTextTransform scales the value text.
func (l GaugeLayout) ValueTextTransform() string { return scaleTransform(l.ValueScale) }

// UnitsTextTransform scales the units text.
func (l GaugeLayout) UnitsTextTransform() string { return scaleTransform(l.UnitsScale) }

// LinearGauge shows a value on a horizontal bar with an optional marker
// for a previous value. Its range grows to include every value it has
// shown and never shrinks.
type LinearGauge struct {
	s     settings
	sched schedule.Scheduler

	valueText TextElement
	unitsText TextElement
	valueFit  *textfit.Fitter
	unitsFit  *textfit.Fitter

	mu       sync.Mutex
	min, max float64
	last     GaugeLayout
	gen      uint64
	onChange func(GaugeLayout)
}

// NewLinearGauge creates a gauge whose text fitting runs on sched.
func NewLinearGauge(sched schedule.Scheduler, opts ...Option) (*LinearGauge, error) {
	s := newSettings(opts)
	if s.margins == nil {
		m := layout.DefaultMargins
		s.margins = &m
	}

	g := &LinearGauge{s: s, sched: sched, min: s.min, max: s.max}

	valueText, err := textElement(s.valueText, gaugeFontSize)
	if err != nil {
		return nil, fmt.Errorf("value text: %w", err)
	}
	unitsText, err := textElement(s.unitsText, gaugeFontSize)
	if err != nil {
		return nil, fmt.Errorf("units text: %w", err)
	}
	g.valueText = valueText
	g.unitsText = unitsText

	fitOpts := []textfit.Option{textfit.WithLogger(s.logger), textfit.WithSettleDelay(TextSettleDelay)}
	g.valueFit = textfit.NewFitter(observedText{valueText, g.setValueScale}, sched, fitOpts...)
	g.unitsFit = textfit.NewFitter(observedText{unitsText, g.setUnitsScale}, sched, fitOpts...)
	return g, nil
}

// OnChange registers fn to receive layouts changed after Update returned,
// such as rescaled text.
func (g *LinearGauge) OnChange(fn func(GaugeLayout)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onChange = fn
}

// Layout returns the most recent layout.
func (g *LinearGauge) Layout() GaugeLayout {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.last
}

// Range returns the gauge's current domain.
func (g *LinearGauge) Range() scale.Domain {
	g.mu.Lock()
	defer g.mu.Unlock()
	return scale.Domain{Min: g.min, Max: g.max}
}

// Update lays the gauge out for in and schedules text fitting.
func (g *LinearGauge) Update(in GaugeInput) GaugeLayout {
	start := time.Now()
	m := *g.s.margins

	g.mu.Lock()
	domain := scale.Domain{Min: g.min, Max: g.max}.Include(in.Value)
	if in.Previous != nil {
		domain = domain.Include(*in.Previous)
	}
	g.min, g.max = domain.Min, domain.Max

	dims := layout.Calculate(in.Width, in.Height, m)
	valueScale := scale.NewLinear(domain, 0, dims.Width)
	cx, cy := dims.Center(m)

	colorDomain := g.s.colorDomain
	if colorDomain == nil {
		colorDomain = []string{in.Units}
	}
	enc := color.NewEncoder(g.s.scheme.WithKind(color.Ordinal), colorDomain, color.WithOverrides(g.s.customColors))

	l := GaugeLayout{
		Dims:         dims,
		Margins:      m,
		Domain:       domain,
		Value:        in.Value,
		DisplayValue: g.s.format(in.Value),
		Units:        in.Units,
		Color:        resolveColor(enc, g.s.logger, gaugeChartType, in.Units),
		BarX:         m.Left(),
		BarY:         dims.Height/2 + m.Top() - 2,
		BarHeight:    gaugeBarHeight,
		BarWidth:     valueScale.Map(in.Value),
		CenterX:      cx,
		CenterY:      cy,
		ValueScale:   g.valueFit.Scale(),
		UnitsScale:   g.unitsFit.Scale(),
	}
	if in.Previous != nil {
		l.HasPrevious = true
		l.PreviousX = m.Left() + valueScale.Map(*in.Previous)
	}
	g.last = l
	g.gen++
	gen := g.gen
	g.mu.Unlock()

	g.valueText.SetText(l.DisplayValue)
	g.unitsText.SetText(in.Units)
	available := textfit.Size{
		Width:  dims.Width,
		Height: math.Max(dims.Height/2-gaugeTextOffset, 0),
	}
	g.sched.ScheduleAfter(TextSettleDelay, func() { g.fitText(gen, available) })

	g.s.logger.Debug("gauge updated", "name", g.s.name, "value", in.Value,
		"min", domain.Min, "max", domain.Max, "width", dims.Width)
	observability.Chart().OnUpdate(gaugeChartType, g.s.name, time.Since(start))
	return l
}

// fitText fits the value and units text into available, unless a later
// update replaced generation gen.
func (g *LinearGauge) fitText(gen uint64, available textfit.Size) {
	g.mu.Lock()
	stale := g.gen != gen
	g.mu.Unlock()
	if stale {
		return
	}
	g.valueFit.Fit(available)
	g.unitsFit.Fit(available)
}

func (g *LinearGauge) setValueScale(s float64) {
	g.publish(func(l *GaugeLayout) { l.ValueScale = s })
}

func (g *LinearGauge) setUnitsScale(s float64) {
	g.publish(func(l *GaugeLayout) { l.UnitsScale = s })
}

// publish applies update to the last layout and passes the result to the
// OnChange callback outside the lock.
func (g *LinearGauge) publish(update func(*GaugeLayout)) {
	g.mu.Lock()
	update(&g.last)
	l, fn := g.last, g.onChange
	g.mu.Unlock()
	if fn != nil {
		fn(l)
	}
}

// observedText reports every scale applied to a text element.
type observedText struct {
	TextElement
	onScale func(float64)
}

func (o observedText) SetScale(s float64) {
	o.TextElement.SetScale(s)
	o.onScale(s)
}

// scaleTransform returns an SVG uniform scale transform.
func scaleTransform(s float64) string {
	return fmt.Sprintf("scale(%s, %s)", num(s), num(s))
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
