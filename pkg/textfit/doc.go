// Package textfit scales text so it fills a bounding box without
// overflowing it.
//
// Glyph metrics are only known once text has been laid out, so fitting is
// iterative: measure at the current scale, back out the unscaled size, and
// pick the largest scale that fits both dimensions. Scales are floored to
// two decimals so floating point noise cannot keep a fit oscillating.
//
// [Fit] performs one pass as a pure function. A [Fitter] owns the state of
// one element and, when a pass changes the scale, schedules exactly one
// more pass after a short delay to pick up any reflow caused by the change.
// Starting a new fit supersedes a pending pass of the previous one.
package textfit
