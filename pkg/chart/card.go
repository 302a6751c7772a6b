package chart

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/matzehuels/chartkit/pkg/animate"
	"github.com/matzehuels/chartkit/pkg/color"
	"github.com/matzehuels/chartkit/pkg/format"
	"github.com/matzehuels/chartkit/pkg/observability"
	"github.com/matzehuels/chartkit/pkg/schedule"
	"github.com/matzehuels/chartkit/pkg/textfit"
)

const (
	cardChartType = "number-card"

	DefaultTextFontSize  = 12
	DefaultLabelFontSize = 15
	DefaultBandHeight    = 10

	cardLabelTrim  = 55
	cardScaleDelay = 8 * time.Millisecond
	cardCountDelay = 20 * time.Millisecond
)

// CardInput is the data for one card update.
type CardInput struct {
	X, Y          float64
	Width, Height float64
	Label         string
	Value         *float64 // nil shows no value

	// MedianSize pads counting values with figure spaces to this many
	// characters so the card does not jitter while counting.
	MedianSize int
}

// CardLayout is the geometry and text of a number card.
type CardLayout struct {
	X           float64    `json:"x"`
	Y           float64    `json:"y"`
	CardWidth   float64    `json:"card_width"`
	CardHeight  float64    `json:"card_height"`
	TextWidth   float64    `json:"text_width"`
	BandHeight  float64    `json:"band_height"`
	TextPadding [4]float64 `json:"text_padding"`

	Label         string  `json:"label"`
	Value         string  `json:"value"`
	Color         string  `json:"color"`
	TextFontSize  float64 `json:"text_font_size"`
	LabelFontSize float64 `json:"label_font_size"`
	Counting      bool    `json:"counting,omitempty"`
}

// Transform positions the card.
func (l CardLayout) Transform() string {
	return fmt.Sprintf("translate(%s , %s)", num(l.X), num(l.Y))
}

// TransformBand positions the band along the bottom edge.
func (l CardLayout) TransformBand() string {
	return fmt.Sprintf("translate(0 , %s)", num(l.CardHeight-l.BandHeight))
}

// NumberCard shows a labelled value. The first update that carries a value
// counts up to it from zero; later updates show new values directly.
type NumberCard struct {
	s         settings
	sched     schedule.Scheduler
	valueText TextElement
	anim      *animate.Animator

	mu          sync.Mutex
	last        CardLayout
	initialized bool
	gen         uint64
	onChange    func(CardLayout)
}

// NewNumberCard creates a card whose deferred work runs on sched.
func NewNumberCard(sched schedule.Scheduler, opts ...Option) (*NumberCard, error) {
	s := newSettings(opts)
	valueText, err := textElement(s.valueText, DefaultTextFontSize)
	if err != nil {
		return nil, fmt.Errorf("value text: %w", err)
	}
	return &NumberCard{
		s:         s,
		sched:     sched,
		valueText: valueText,
		anim:      animate.NewAnimator(sched, animate.WithDuration(s.duration)),
		last: CardLayout{
			BandHeight:    DefaultBandHeight,
			TextPadding:   [4]float64{10, 20, 5, 20},
			TextFontSize:  DefaultTextFontSize,
			LabelFontSize: DefaultLabelFontSize,
		},
	}, nil
}

// OnChange registers fn to receive layouts changed after Update returned:
// rescaled text and every tick of the count.
func (c *NumberCard) OnChange(fn func(CardLayout)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// Layout returns the most recent layout.
func (c *NumberCard) Layout() CardLayout {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// Close cancels the count and any pending text scaling.
func (c *NumberCard) Close() {
	c.mu.Lock()
	c.gen++
	c.mu.Unlock()
	c.anim.Cancel()
}

// Update lays the card out for in. Text scaling and the first count are
// scheduled shortly after.
func (c *NumberCard) Update(in CardInput) CardLayout {
	start := time.Now()

	c.mu.Lock()
	l := c.last
	l.X, l.Y = in.X, in.Y
	l.CardWidth = math.Max(0, in.Width)
	l.CardHeight = math.Max(0, in.Height)
	l.TextWidth = l.CardWidth - l.TextPadding[1] - l.TextPadding[3]
	l.Label = format.EscapeLabel(format.TrimLabel(in.Label, cardLabelTrim))

	var value string
	if in.Value != nil {
		value = c.s.format(*in.Value)
	}
	l.Value = format.Pad(value, in.MedianSize)
	setPadding(&l)

	colorDomain := c.s.colorDomain
	if colorDomain == nil {
		colorDomain = []string{in.Label}
	}
	enc := color.NewEncoder(c.s.scheme.WithKind(color.Ordinal), colorDomain, color.WithOverrides(c.s.customColors))
	l.Color = resolveColor(enc, c.s.logger, cardChartType, in.Label)

	c.last = l
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	c.valueText.SetText(l.Value)
	c.sched.ScheduleAfter(cardScaleDelay, func() { c.settle(gen, value, in) })

	c.s.logger.Debug("card updated", "name", c.s.name, "label", in.Label, "value", value)
	observability.Chart().OnUpdate(cardChartType, c.s.name, time.Since(start))
	return l
}

// settle scales the value text to the card and shows the unpadded value.
func (c *NumberCard) settle(gen uint64, value string, in CardInput) {
	c.mu.Lock()
	if c.gen != gen {
		c.mu.Unlock()
		return
	}
	measured := c.valueText.Measure()
	l := c.last
	padding := l.CardWidth / 8
	available := textfit.Size{Width: l.CardWidth - 2*padding, Height: l.CardHeight / 3}
	size, ok := textfit.FitFontSize(measured, available, l.TextFontSize)
	if ok {
		l.TextFontSize = size
		l.LabelFontSize = math.Min(size, DefaultLabelFontSize)
		setPadding(&l)
	}
	l.Value = value
	startCount := in.Value != nil && !c.initialized && c.s.animations
	c.last = l
	fn := c.onChange
	c.mu.Unlock()

	if ok {
		c.valueText.SetScale(l.TextFontSize / DefaultTextFontSize)
	}
	c.valueText.SetText(value)
	if fn != nil {
		fn(l)
	}
	if startCount {
		target := *in.Value
		c.sched.ScheduleAfter(cardCountDelay, func() { c.startCount(gen, target, in.MedianSize) })
	}
}

// startCount runs the first count to target once the card has settled.
// Later updates show their value directly.
func (c *NumberCard) startCount(gen uint64, target float64, median int) {
	c.mu.Lock()
	if c.gen != gen || c.initialized {
		c.mu.Unlock()
		return
	}
	c.initialized = true
	c.mu.Unlock()

	precision := animate.Precision(target)
	c.anim.Start(0, target, precision, func(t animate.Tick) {
		var text string
		switch {
		case t.Finished:
			text = c.s.format(target)
		case c.s.valueFormat != nil:
			text = format.Pad(c.s.valueFormat(t.Value), median)
		default:
			text = format.Pad(c.s.formatter.Fixed(t.Value, precision), median)
		}

		c.mu.Lock()
		c.last.Value = text
		c.last.Counting = !t.Finished
		l, fn := c.last, c.onChange
		c.mu.Unlock()

		c.valueText.SetText(text)
		if fn != nil {
			fn(l)
		}
	})
}

// setPadding derives the text padding from the card size and font sizes.
func setPadding(l *CardLayout) {
	l.TextPadding[1] = l.CardWidth / 8
	l.TextPadding[3] = l.CardWidth / 8
	half := l.CardHeight / 2
	l.TextPadding[0] = half - l.TextFontSize - l.LabelFontSize/2
	l.TextPadding[2] = half - l.LabelFontSize
}
