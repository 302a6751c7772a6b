// Package schedule provides the frame and timer primitives that drive value
// animations and deferred text measurement.
//
// Two implementations of [Scheduler] are provided:
//
//   - [Loop] runs every callback on the goroutine that calls [Loop.Run],
//     firing frames at a fixed rate. This gives the single-threaded
//     cooperative model the animation and text fitting code relies on.
//   - [Manual] fires nothing on its own. Tests advance its clock explicitly
//     and observe exactly which callbacks ran.
//
// A frame callback fires at most once. Cancelling a frame token guarantees
// the callback will not run afterwards, even when the frame is already due.
package schedule

import "time"

// Token identifies a scheduled frame callback. The zero Token is never
// issued and cancelling it is a no-op.
type Token uint64

// Scheduler delivers one-shot callbacks.
type Scheduler interface {
	// ScheduleFrame runs fn before the next frame is presented.
	ScheduleFrame(fn func(now time.Time)) Token

	// CancelFrame prevents a pending frame callback from running.
	// Unknown and already-fired tokens are ignored.
	CancelFrame(t Token)

	// ScheduleAfter runs fn once at least d has elapsed.
	ScheduleAfter(d time.Duration, fn func())
}
