// Package animate counts numeric values from one number to another over
// time, one tick per display frame.
//
// A sequence started with [Count] or [Animate] eases out exponentially from
// the start value towards the target. Every intermediate value is rounded
// to the target's decimal precision, so an integer target never shows
// fractional digits and a target like 12.50 always shows two. Values never
// overshoot the target, and the final tick carries the target exactly with
// Finished set.
//
// Sequences are driven by an injected [schedule.Scheduler] and stopped with
// [Handle.Cancel]. Cancelling is idempotent and a cancelled sequence never
// delivers another tick.
//
// Display elements that restart their count whenever data changes should
// hold an [Animator], which cancels the sequence in flight before starting
// the next one:
//
//	a := animate.NewAnimator(loop)
//	a.Start(0, 1250.5, -1, func(t animate.Tick) { label.SetText(t.Text) })
//
// [schedule.Scheduler]: github.com/matzehuels/chartkit/pkg/schedule
package animate
