package textfit

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartkit/pkg/observability"
	"github.com/matzehuels/chartkit/pkg/schedule"
)

// DefaultSettleDelay is how long a Fitter waits for layout to settle
// before its follow-up pass.
const DefaultSettleDelay = 50 * time.Millisecond

// Element is text whose rendered size depends on a scale factor.
type Element interface {
	// Measure returns the rendered size at the current scale, or a zero
	// size before the element has been laid out.
	Measure() Size
	// SetScale applies a new scale factor.
	SetScale(scale float64)
}

// Fitter fits one element. It must not be shared between elements.
type Fitter struct {
	el     Element
	sched  schedule.Scheduler
	delay  time.Duration
	logger *log.Logger

	mu     sync.Mutex
	scale  float64
	gen    uint64
	passes int
}

// Option configures a Fitter.
type Option func(*Fitter)

// WithSettleDelay sets the delay before the follow-up pass.
func WithSettleDelay(d time.Duration) Option {
	return func(f *Fitter) {
		if d >= 0 {
			f.delay = d
		}
	}
}

// WithLogger sets the logger used for pass diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(f *Fitter) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithInitialScale sets the scale the element is currently rendered at.
func WithInitialScale(scale float64) Option {
	return func(f *Fitter) {
		if scale > 0 {
			f.scale = scale
		}
	}
}

// NewFitter returns a Fitter for el. Follow-up passes are scheduled on s.
func NewFitter(el Element, s schedule.Scheduler, opts ...Option) *Fitter {
	f := &Fitter{
		el:     el,
		sched:  s,
		delay:  DefaultSettleDelay,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
		scale:  1,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Scale returns the scale last applied to the element.
func (f *Fitter) Scale() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.scale
}

// Passes returns the number of measurement passes run so far.
func (f *Fitter) Passes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.passes
}

// Fit runs a measurement pass against available and returns its result.
// If the scale changed, one follow-up pass is scheduled after the settle
// delay; the follow-up never schedules another. Calling Fit again
// supersedes any follow-up still pending.
func (f *Fitter) Fit(available Size) Result {
	f.mu.Lock()
	f.gen++
	gen := f.gen
	f.mu.Unlock()
	return f.pass(available, gen, true)
}

// Cancel drops any pending follow-up pass.
func (f *Fitter) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gen++
}

// pass measures the element, applies the fitted scale and, when repeat is
// set and the scale changed, schedules one verification pass after the
// settle delay.
func (f *Fitter) pass(available Size, gen uint64, repeat bool) Result {
	measured := f.el.Measure()

	f.mu.Lock()
	if f.gen != gen {
		f.mu.Unlock()
		return Result{Scale: f.Scale()}
	}
	f.passes++
	pass := f.passes
	r := Fit(measured, available, f.scale)
	if r.NeedsAnotherPass {
		f.scale = r.Scale
	}
	f.mu.Unlock()

	if r.Deferred {
		f.logger.Debug("text not laid out yet, deferring fit")
		observability.TextFit().OnDefer()
		return r
	}

	observability.TextFit().OnPass(pass, r.Scale, !r.NeedsAnotherPass)
	if !r.NeedsAnotherPass {
		return r
	}

	f.logger.Debug("text rescaled", "scale", r.Scale, "measured", measured, "available", available)
	f.el.SetScale(r.Scale)
	if repeat {
		f.sched.ScheduleAfter(f.delay, func() {
			f.pass(available, gen, false)
		})
	}
	return r
}
