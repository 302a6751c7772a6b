package schedule

import (
	"context"
	"sync"
	"time"
)

// DefaultFrameRate is the number of frames per second a Loop presents.
const DefaultFrameRate = 60

// Loop is a Scheduler that runs all callbacks on the goroutine executing
// Run. Scheduling and cancelling are safe from any goroutine.
type Loop struct {
	interval time.Duration
	clock    func() time.Time

	mu     sync.Mutex
	next   Token
	frames map[Token]func(time.Time)
	order  []Token
	queue  []func()
	wake   chan struct{}
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithFrameRate sets how many frames per second the loop presents.
// Non-positive rates are ignored.
func WithFrameRate(fps int) LoopOption {
	return func(l *Loop) {
		if fps > 0 {
			l.interval = time.Second / time.Duration(fps)
		}
	}
}

// WithClock overrides the time source passed to frame callbacks.
func WithClock(now func() time.Time) LoopOption {
	return func(l *Loop) {
		if now != nil {
			l.clock = now
		}
	}
}

// NewLoop creates a Loop. It does nothing until Run is called.
func NewLoop(opts ...LoopOption) *Loop {
	l := &Loop{
		interval: time.Second / DefaultFrameRate,
		clock:    time.Now,
		frames:   make(map[Token]func(time.Time)),
		wake:     make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ScheduleFrame queues fn for the next frame the loop presents. Callbacks
// run in scheduling order; one scheduled while a frame is being presented
// waits for the following frame.
func (l *Loop) ScheduleFrame(fn func(time.Time)) Token {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.next++
	l.frames[l.next] = fn
	l.order = append(l.order, l.next)
	return l.next
}

// CancelFrame removes a pending frame callback. It may be called from any
// goroutine; once it returns the callback will not run.
func (l *Loop) CancelFrame(t Token) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.frames, t)
}

// ScheduleAfter runs fn on the loop goroutine once d has elapsed. Negative
// delays are treated as zero. The callback is dropped if the loop stops
// first.
func (l *Loop) ScheduleAfter(d time.Duration, fn func()) {
	time.AfterFunc(max(d, 0), func() { l.Post(fn) })
}

// Post queues fn to run on the loop goroutine as soon as possible.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run presents frames and executes posted work until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
			l.drain()
		case <-ticker.C:
			l.drain()
			l.present()
		}
	}
}

// drain runs the work posted since the last drain, in posting order.
func (l *Loop) drain() {
	l.mu.Lock()
	work := l.queue
	l.queue = nil
	l.mu.Unlock()

	for _, fn := range work {
		fn()
	}
}

// present runs the frame callbacks queued before the frame started, all
// with the same timestamp. Tokens cancelled meanwhile are skipped.
func (l *Loop) present() {
	l.mu.Lock()
	pending := l.order
	l.order = nil
	l.mu.Unlock()

	now := l.clock()
	for _, tok := range pending {
		l.mu.Lock()
		fn, ok := l.frames[tok]
		delete(l.frames, tok)
		l.mu.Unlock()
		if ok {
			fn(now)
		}
	}
}
