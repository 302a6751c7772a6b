package color

import "math"

// Stop is one color stop of a linear gradient. Offset is a percentage.
type Stop struct {
	Color   string  `json:"color"`
	Offset  float64 `json:"offset"`
	Opacity float64 `json:"opacity"`
}

// GradientStops returns the stops that paint a bar filled from start to
// value with a linear scheme's ramp. The first stop sits at 0% with the
// color of start and the last at 100% with the color of value; every ramp
// color strictly between the two positions is kept in order. Non-linear
// schemes and empty domains yield nil.
func (e *Encoder) GradientStops(value, start float64) []Stop {
	if e.scheme.Kind != Linear || len(e.sorted) == 0 || len(e.ramp) == 0 {
		return nil
	}
	if math.IsNaN(value) || math.IsNaN(start) {
		return nil
	}

	from, to := e.position(start), e.position(value)
	startColor, _ := e.rampAt(from)
	endColor, _ := e.rampAt(to)
	if from == to {
		return []Stop{
			{Color: startColor, Offset: 0, Opacity: 1},
			{Color: endColor, Offset: 100, Opacity: 1},
		}
	}

	stops := []Stop{{Color: startColor, Offset: 0, Opacity: 1}}
	n := len(e.ramp)
	for k := 0; k < n; k++ {
		i := k
		if to < from {
			i = n - 1 - k
		}
		p := 0.0
		if n > 1 {
			p = float64(i) / float64(n-1)
		}
		if p <= math.Min(from, to) || p >= math.Max(from, to) {
			continue
		}
		stops = append(stops, Stop{
			Color:   e.ramp[i].Hex(),
			Offset:  (p - from) / (to - from) * 100,
			Opacity: 1,
		})
	}
	return append(stops, Stop{Color: endColor, Offset: 100, Opacity: 1})
}
