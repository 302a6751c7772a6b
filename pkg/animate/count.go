package animate

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/chartkit/pkg/observability"
	"github.com/matzehuels/chartkit/pkg/schedule"
)

// DefaultDuration is used when a count is started without a duration.
const DefaultDuration = time.Second

// Tick is one emitted value of a count.
type Tick struct {
	Value    float64       // rounded to the sequence's precision
	Text     string        // Value with exactly Precision decimals
	Progress time.Duration // time since the first frame
	Finished bool
}

// Handle controls one running count.
type Handle struct {
	id    string
	sched schedule.Scheduler

	mu        sync.Mutex
	token     schedule.Token
	state     state
	frames    int
	started   time.Time
	precision int
}

type state int

const (
	running state = iota
	finished
	cancelled
)

// ID returns the unique identifier reported to animation hooks.
func (h *Handle) ID() string { return h.id }

// Precision returns the number of decimals every tick carries.
func (h *Handle) Precision() int { return h.precision }

// Cancel stops the count. Called on the goroutine that runs the scheduler's
// callbacks, no tick is delivered after Cancel returns; from another
// goroutine a tick that is already being delivered may still complete.
// Cancelling a finished or cancelled count does nothing.
func (h *Handle) Cancel() {
	h.mu.Lock()
	if h.state != running {
		h.mu.Unlock()
		return
	}
	h.state = cancelled
	tok, frames := h.token, h.frames
	h.mu.Unlock()

	h.sched.CancelFrame(tok)
	observability.Animation().OnCancel(h.id, frames)
}

// Done reports whether the count delivered its final tick.
func (h *Handle) Done() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state == finished
}

// Cancelled reports whether the count was stopped before finishing.
func (h *Handle) Cancelled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state == cancelled
}

// Animate counts from from to to, inferring the precision from to.
func Animate(s schedule.Scheduler, from, to float64, d time.Duration, onTick func(Tick)) *Handle {
	return Count(s, from, to, Precision(to), d, onTick)
}

// Count schedules a count from from to to over d, delivering one Tick per
// frame to onTick. A negative precision is inferred from to. The first
// frame fixes the start time and shows from.
func Count(s schedule.Scheduler, from, to float64, precision int, d time.Duration, onTick func(Tick)) *Handle {
	if precision < 0 {
		precision = Precision(to)
	}
	precision = clampPrecision(precision)
	if d <= 0 {
		d = DefaultDuration
	}

	h := &Handle{id: uuid.NewString(), sched: s, precision: precision}
	observability.Animation().OnStart(h.id, from, to)

	duration := float64(d)
	var frame func(now time.Time)
	frame = func(now time.Time) {
		h.mu.Lock()
		if h.state != running {
			h.mu.Unlock()
			return
		}
		if h.frames == 0 {
			h.started = now
		}
		h.frames++
		progress := now.Sub(h.started)
		done := progress >= d
		if done {
			h.state = finished
		}
		frames := h.frames
		h.mu.Unlock()

		t := Tick{Progress: progress, Finished: done}
		if done {
			t.Value = to
		} else {
			t.Value = frameValue(from, to, precision, float64(progress), duration)
		}
		t.Text = FormatFixed(t.Value, precision)
		onTick(t)

		if done {
			observability.Animation().OnFinish(h.id, frames, progress)
			return
		}

		h.mu.Lock()
		defer h.mu.Unlock()
		if h.state == running {
			h.token = s.ScheduleFrame(frame)
		}
	}

	h.mu.Lock()
	h.token = s.ScheduleFrame(frame)
	h.mu.Unlock()
	return h
}
