package scale

import "math"

// Domain is a closed numeric interval [Min, Max].
type Domain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DomainOf returns the smallest domain containing every finite value.
// NaN and infinite values are ignored. With no usable values the domain is
// [0, 0].
func DomainOf(values ...float64) Domain {
	var d Domain
	seen := false
	for _, v := range values {
		if !finite(v) {
			continue
		}
		if !seen {
			d = Domain{Min: v, Max: v}
			seen = true
			continue
		}
		d.Min = math.Min(d.Min, v)
		d.Max = math.Max(d.Max, v)
	}
	return d
}

// Include returns d widened to contain every finite value. The result never
// shrinks: Include(d).Min <= d.Min and Include(d).Max >= d.Max.
func (d Domain) Include(values ...float64) Domain {
	for _, v := range values {
		if !finite(v) {
			continue
		}
		d.Min = math.Min(d.Min, v)
		d.Max = math.Max(d.Max, v)
	}
	return d
}

// Degenerate reports whether the domain has zero width.
func (d Domain) Degenerate() bool { return d.Min == d.Max }

// Span returns Max - Min.
func (d Domain) Span() float64 { return d.Max - d.Min }

// Contains reports whether v lies inside the closed interval.
func (d Domain) Contains(v float64) bool { return v >= d.Min && v <= d.Max }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
