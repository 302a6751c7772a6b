package animate

import (
	"sync"
	"time"

	"github.com/matzehuels/chartkit/pkg/schedule"
)

// Animator owns the count of one display element. At most one count is in
// flight at a time: starting a new one cancels the previous count first.
//
// Ticks of a superseded count are dropped even when they were already being
// delivered. Call Start on the goroutine that runs the scheduler's callbacks
// (Loop.Post) so a replaced count cannot interleave with the new one.
type Animator struct {
	sched    schedule.Scheduler
	duration time.Duration

	mu      sync.Mutex
	current *Handle
	gen     uint64
	value   float64
}

// AnimatorOption configures an Animator.
type AnimatorOption func(*Animator)

// WithDuration sets the duration of every count the animator starts.
func WithDuration(d time.Duration) AnimatorOption {
	return func(a *Animator) {
		if d > 0 {
			a.duration = d
		}
	}
}

// NewAnimator returns an Animator driven by s.
func NewAnimator(s schedule.Scheduler, opts ...AnimatorOption) *Animator {
	a := &Animator{sched: s, duration: DefaultDuration}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start cancels any count in flight and counts from from to to. A negative
// precision is inferred from to.
func (a *Animator) Start(from, to float64, precision int, onTick func(Tick)) *Handle {
	a.mu.Lock()
	prev := a.current
	a.current = nil
	a.gen++
	gen := a.gen
	a.value = from
	a.mu.Unlock()

	if prev != nil {
		prev.Cancel()
	}

	h := Count(a.sched, from, to, precision, a.duration, func(t Tick) {
		a.deliver(gen, t, onTick)
	})

	a.mu.Lock()
	superseded := a.gen != gen
	if !superseded {
		a.current = h
	}
	a.mu.Unlock()
	if superseded {
		h.Cancel()
	}
	return h
}

// deliver records t and passes it on, unless the count of generation gen
// has been replaced or cancelled since the tick was computed.
func (a *Animator) deliver(gen uint64, t Tick, onTick func(Tick)) {
	a.mu.Lock()
	if a.gen != gen {
		a.mu.Unlock()
		return
	}
	a.value = t.Value
	a.mu.Unlock()
	onTick(t)
}

// StartFrom counts from the last displayed value to to.
func (a *Animator) StartFrom(to float64, precision int, onTick func(Tick)) *Handle {
	return a.Start(a.Value(), to, precision, onTick)
}

// Value returns the most recent value shown by the current count.
func (a *Animator) Value() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.value
}

// Cancel stops the count in flight, if any.
func (a *Animator) Cancel() {
	a.mu.Lock()
	prev := a.current
	a.current = nil
	a.gen++
	a.mu.Unlock()
	if prev != nil {
		prev.Cancel()
	}
}

// Running reports whether a count is in flight.
func (a *Animator) Running() bool {
	a.mu.Lock()
	h := a.current
	a.mu.Unlock()
	return h != nil && !h.Done() && !h.Cancelled()
}
