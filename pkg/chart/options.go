package chart

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartkit/pkg/color"
	"github.com/matzehuels/chartkit/pkg/format"
	"github.com/matzehuels/chartkit/pkg/layout"
	"github.com/matzehuels/chartkit/pkg/textfit"
)

// DefaultScheme is the palette used when none is configured.
const DefaultScheme = "cool"

// TextElement is a text node whose content and scale a chart controls.
// *textfit.TextElement implements it.
type TextElement interface {
	textfit.Element
	SetText(s string)
}

type settings struct {
	name         string
	logger       *log.Logger
	margins      *layout.Margins
	scheme       color.Scheme
	customColors map[string]string
	colorDomain  []string
	valueFormat  format.ValueFunc
	formatter    *format.Formatter
	duration     time.Duration
	animations   bool
	min, max     float64

	labels          bool
	doughnut        bool
	arcWidth        float64
	explode         bool
	trimLabels      bool
	maxLabelLength  int
	legacyTransform bool

	valueText TextElement
	unitsText TextElement
}

// newSettings applies opts over the defaults.
func newSettings(opts []Option) settings {
	scheme, _ := color.Lookup(DefaultScheme)
	s := settings{
		logger:         log.NewWithOptions(io.Discard, log.Options{}),
		scheme:         scheme,
		formatter:      format.Default(),
		duration:       time.Second,
		animations:     true,
		max:            100,
		arcWidth:       0.25,
		trimLabels:     true,
		maxLabelLength: 10,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// format renders a value with the custom formatter or the locale default.
func (s *settings) format(v float64) string {
	if s.valueFormat != nil {
		return s.valueFormat(v)
	}
	return s.formatter.Format(v)
}

// Option configures a chart. Options that do not apply to a chart type are
// ignored by it.
type Option func(*settings)

// WithName labels the chart in logs and hooks.
func WithName(name string) Option {
	return func(s *settings) { s.name = name }
}

// WithLogger sets the logger for update diagnostics and missing colors.
func WithLogger(l *log.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMargins overrides the chart's default margins.
func WithMargins(m layout.Margins) Option {
	return func(s *settings) { s.margins = &m }
}

// WithScheme sets the color scheme.
func WithScheme(scheme color.Scheme) Option {
	return func(s *settings) { s.scheme = scheme }
}

// WithCustomColors sets per-key color overrides.
func WithCustomColors(m map[string]string) Option {
	return func(s *settings) { s.customColors = m }
}

// WithColorDomain fixes the ordered keys colors are assigned over instead
// of deriving them from the data.
func WithColorDomain(keys ...string) Option {
	return func(s *settings) { s.colorDomain = keys }
}

// WithValueFormat replaces the locale formatter for displayed values.
func WithValueFormat(fn format.ValueFunc) Option {
	return func(s *settings) { s.valueFormat = fn }
}

// WithFormatter sets the locale formatter used when no value format is set.
func WithFormatter(f *format.Formatter) Option {
	return func(s *settings) {
		if f != nil {
			s.formatter = f
		}
	}
}

// WithAnimations enables or disables count animations.
func WithAnimations(on bool) Option {
	return func(s *settings) { s.animations = on }
}

// WithDuration sets the count animation duration.
func WithDuration(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.duration = d
		}
	}
}

// WithRange sets the initial gauge range. The range only ever grows to
// include displayed values.
func WithRange(lo, hi float64) Option {
	return func(s *settings) { s.min, s.max = lo, hi }
}

// WithLabels enables pie slice labels.
func WithLabels(on bool) Option {
	return func(s *settings) { s.labels = on }
}

// WithDoughnut draws the pie as a ring arcWidth (a fraction of the outer
// radius) thick. Non-positive widths keep the default of 0.25.
func WithDoughnut(arcWidth float64) Option {
	return func(s *settings) {
		s.doughnut = true
		if arcWidth > 0 {
			s.arcWidth = arcWidth
		}
	}
}

// WithExplodeSlices scales each pie slice's radius by its value.
func WithExplodeSlices(on bool) Option {
	return func(s *settings) { s.explode = on }
}

// WithLabelTrim sets whether and where pie labels are trimmed.
func WithLabelTrim(on bool, maxLength int) Option {
	return func(s *settings) {
		s.trimLabels = on
		if maxLength > 0 {
			s.maxLabelLength = maxLength
		}
	}
}

// WithLegacyTransform positions labels with transform attributes for
// surfaces that do not support CSS 3D transforms.
func WithLegacyTransform(on bool) Option {
	return func(s *settings) { s.legacyTransform = on }
}

// WithValueText sets the element the displayed value is rendered into.
func WithValueText(el TextElement) Option {
	return func(s *settings) { s.valueText = el }
}

// WithUnitsText sets the element a gauge's units are rendered into.
func WithUnitsText(el TextElement) Option {
	return func(s *settings) { s.unitsText = el }
}

// resolveColor resolves key and logs a warning when it falls back.
func resolveColor(enc *color.Encoder, logger *log.Logger, chart, key string) string {
	if c, ok := enc.Lookup(key); ok {
		return c
	}
	logger.Warn("no color for key, using fallback", "chart", chart, "scheme", enc.Scheme().Name, "key", key)
	return enc.Resolve(key)
}

// textElement returns el, or a measured Go Regular element of size when el
// is nil.
func textElement(el TextElement, size float64) (TextElement, error) {
	if el != nil {
		return el, nil
	}
	t, err := textfit.NewTextElement("", size)
	if err != nil {
		return nil, err
	}
	return t, nil
}
