package textfit

import "math"

// Size is a width and height in pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Empty reports whether either dimension is zero or negative.
func (s Size) Empty() bool { return s.Width <= 0 || s.Height <= 0 }

// Result is the outcome of one measurement pass.
type Result struct {
	Scale            float64 `json:"scale"`
	NeedsAnotherPass bool    `json:"needs_another_pass"`
	Deferred         bool    `json:"deferred,omitempty"`
}

// Fit computes the scale at which text measured at current fills
// available. Unrendered text (a zero measured dimension) defers and keeps
// the current scale. A non-positive current scale is treated as 1.
func Fit(measured, available Size, current float64) Result {
	if current <= 0 || math.IsNaN(current) || math.IsInf(current, 0) {
		current = 1
	}
	if measured.Empty() {
		return Result{Scale: current, Deferred: true}
	}

	unscaledW := measured.Width / current
	unscaledH := measured.Height / current
	candidate := math.Min(
		floor2(math.Max(available.Width, 0)/unscaledW),
		floor2(math.Max(available.Height, 0)/unscaledH),
	)
	if candidate == current {
		return Result{Scale: current}
	}
	return Result{Scale: candidate, NeedsAnotherPass: true}
}

func floor2(v float64) float64 {
	return math.Floor(v*100) / 100
}

// FitFontSize grows or shrinks a font size so text measured at size fills
// available, flooring to whole pixels. ok is false when the text has not
// been laid out yet.
func FitFontSize(measured, available Size, size float64) (newSize float64, ok bool) {
	if measured.Empty() {
		return size, false
	}
	ratio := math.Min(available.Width/measured.Width, available.Height/measured.Height)
	return math.Max(0, math.Floor(size*ratio)), true
}
