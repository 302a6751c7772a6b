package animate

import "math"

// EaseOutExpo returns the eased value at elapsed time t of a transition
// starting at b, changing by c, and lasting d. It reaches exactly b+c at
// t == d.
func EaseOutExpo(t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	return c*(-math.Pow(2, -10*t/d)+1)*1024/1023 + b
}

// frameValue computes one tick's value: eased, clamped so it never passes
// to, rounded to precision and clamped again after rounding.
func frameValue(from, to float64, precision int, elapsed, duration float64) float64 {
	var v float64
	if from > to {
		v = from - EaseOutExpo(elapsed, 0, from-to, duration)
		v = math.Max(v, to)
	} else {
		v = EaseOutExpo(elapsed, from, to-from, duration)
		v = math.Min(v, to)
	}
	v = Round(v, precision)
	if from > to {
		return math.Max(v, to)
	}
	return math.Min(v, to)
}
