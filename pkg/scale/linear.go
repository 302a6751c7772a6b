package scale

import "math"

// Func maps a domain value to a pixel position.
type Func func(v float64) float64

// Linear is a monotonic linear mapping from a Domain to [R0, R1].
type Linear struct {
	Domain Domain
	R0, R1 float64
}

// NewLinear builds a linear scale from d onto the range [r0, r1].
func NewLinear(d Domain, r0, r1 float64) Linear {
	return Linear{Domain: d, R0: r0, R1: r1}
}

// Build derives a linear scale over [min(values), max(values)] mapped onto
// [0, length].
func Build(length float64, values ...float64) Linear {
	return NewLinear(DomainOf(values...), 0, length)
}

// Map returns the pixel position for v. Values outside the domain are
// extrapolated. A degenerate domain maps everything to the range midpoint.
func (s Linear) Map(v float64) float64 {
	if s.Domain.Degenerate() {
		return (s.R0 + s.R1) / 2
	}
	t := (v - s.Domain.Min) / s.Domain.Span()
	return s.R0 + t*(s.R1-s.R0)
}

// Invert maps a pixel position back into the domain. For a degenerate
// domain or range it returns Domain.Min.
func (s Linear) Invert(px float64) float64 {
	if s.Domain.Degenerate() || s.R0 == s.R1 {
		return s.Domain.Min
	}
	t := (px - s.R0) / (s.R1 - s.R0)
	return s.Domain.Min + t*s.Domain.Span()
}

// Func returns Map as a standalone function.
func (s Linear) Func() Func { return s.Map }

// Ticks returns roughly count evenly spaced, human-friendly values inside the
// domain (steps of 1, 2 or 5 times a power of ten).
func (s Linear) Ticks(count int) []float64 {
	lo, hi := s.Domain.Min, s.Domain.Max
	if count <= 0 {
		return nil
	}
	if lo == hi {
		return []float64{lo}
	}

	reverse := hi < lo
	if reverse {
		lo, hi = hi, lo
	}

	inc := tickIncrement(lo, hi, count)
	if inc == 0 || math.IsInf(inc, 0) || math.IsNaN(inc) {
		return nil
	}

	var ticks []float64
	if inc > 0 {
		r0, r1 := math.Round(lo/inc), math.Round(hi/inc)
		if r0*inc < lo {
			r0++
		}
		if r1*inc > hi {
			r1--
		}
		for i := r0; i <= r1; i++ {
			ticks = append(ticks, i*inc)
		}
	} else {
		// Negative increments encode 1/step to keep fractional ticks exact.
		inv := -inc
		r0, r1 := math.Round(lo*inv), math.Round(hi*inv)
		if r0/inv < lo {
			r0++
		}
		if r1/inv > hi {
			r1--
		}
		for i := r0; i <= r1; i++ {
			ticks = append(ticks, i/inv)
		}
	}

	if reverse {
		for i, j := 0, len(ticks)-1; i < j; i, j = i+1, j-1 {
			ticks[i], ticks[j] = ticks[j], ticks[i]
		}
	}
	return ticks
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

func tickIncrement(lo, hi float64, count int) float64 {
	step := (hi - lo) / float64(count)
	power := math.Floor(math.Log10(step))
	errRatio := step / math.Pow(10, power)

	factor := 1.0
	switch {
	case errRatio >= e10:
		factor = 10
	case errRatio >= e5:
		factor = 5
	case errRatio >= e2:
		factor = 2
	}

	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}
