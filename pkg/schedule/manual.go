package schedule

import (
	"slices"
	"sync"
	"time"
)

// Manual is a Scheduler driven entirely by its caller. Frames run only on
// Frame and timers only on Advance, on the calling goroutine, so tests can
// step an animation one frame at a time on a virtual clock.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	next   Token
	frames []manualFrame
	timers []manualTimer
	seq    uint64
}

type manualFrame struct {
	token Token
	fn    func(time.Time)
}

type manualTimer struct {
	due time.Time
	seq uint64
	fn  func()
}

// NewManual returns a Manual scheduler whose clock starts at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the scheduler's current time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// ScheduleFrame queues fn for the next call to Frame.
func (m *Manual) ScheduleFrame(fn func(time.Time)) Token {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	m.frames = append(m.frames, manualFrame{token: m.next, fn: fn})
	return m.next
}

// CancelFrame removes a pending frame callback. Unknown tokens are ignored.
func (m *Manual) CancelFrame(t Token) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frames = slices.DeleteFunc(m.frames, func(f manualFrame) bool { return f.token == t })
}

// ScheduleAfter queues fn to run once Advance moves the clock d past its
// current time. Timers due at the same time run in scheduling order.
func (m *Manual) ScheduleAfter(d time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.timers = append(m.timers, manualTimer{due: m.now.Add(max(d, 0)), seq: m.seq, fn: fn})
}

// Frame moves the clock forward by d and presents one frame: every frame
// callback pending at the time of the call runs once, in scheduling order.
// Callbacks scheduled during the frame wait for the next one. It returns
// the number of callbacks run.
func (m *Manual) Frame(d time.Duration) int {
	m.mu.Lock()
	m.now = m.now.Add(d)
	now := m.now
	pending := make([]Token, len(m.frames))
	for i, f := range m.frames {
		pending[i] = f.token
	}
	m.mu.Unlock()

	ran := 0
	for _, tok := range pending {
		fn := m.take(tok)
		if fn == nil {
			continue // cancelled by an earlier callback
		}
		fn(now)
		ran++
	}
	return ran
}

// take removes the frame callback for t and returns it, or nil when the
// token was cancelled.
func (m *Manual) take(t Token) func(time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, f := range m.frames {
		if f.token == t {
			m.frames = slices.Delete(m.frames, i, i+1)
			return f.fn
		}
	}
	return nil
}

// Advance moves the clock forward by d, running due timers in order of
// their due time. Timers scheduled by those callbacks run too if they fall
// due within the window. It returns the number of timers run.
func (m *Manual) Advance(d time.Duration) int {
	m.mu.Lock()
	end := m.now.Add(d)
	m.mu.Unlock()

	ran := 0
	for {
		m.mu.Lock()
		i := m.nextDue(end)
		if i < 0 {
			m.now = end
			m.mu.Unlock()
			return ran
		}
		t := m.timers[i]
		m.timers = slices.Delete(m.timers, i, i+1)
		if t.due.After(m.now) {
			m.now = t.due
		}
		m.mu.Unlock()

		t.fn()
		ran++
	}
}

// nextDue returns the index of the earliest timer due by end, or -1.
// Callers hold m.mu.
func (m *Manual) nextDue(end time.Time) int {
	best := -1
	for i, t := range m.timers {
		if t.due.After(end) {
			continue
		}
		if best < 0 || t.due.Before(m.timers[best].due) ||
			(t.due.Equal(m.timers[best].due) && t.seq < m.timers[best].seq) {
			best = i
		}
	}
	return best
}

// PendingFrames returns the number of frame callbacks waiting to run.
func (m *Manual) PendingFrames() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.frames)
}

// PendingTimers returns the number of deferred callbacks waiting to run.
func (m *Manual) PendingTimers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// Settle alternates Advance(step) and Frame(0) until nothing is pending or
// limit has passed on the scheduler's clock. It reports whether every
// callback ran. A non-positive step uses one frame at DefaultFrameRate.
func (m *Manual) Settle(step, limit time.Duration) bool {
	if step <= 0 {
		step = time.Second / DefaultFrameRate
	}
	for elapsed := time.Duration(0); elapsed < limit; elapsed += step {
		if m.idle() {
			return true
		}
		m.Advance(step)
		m.Frame(0)
	}
	return m.idle()
}

// idle reports whether no frame or timer is pending.
func (m *Manual) idle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.frames) == 0 && len(m.timers) == 0
}
