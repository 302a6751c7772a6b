package radial

import "math"

const (
	// LabelFactor places labels at this multiple of the outer radius.
	LabelFactor = 1.5
	// MinLabelDistance is the vertical gap enforced between labels on the
	// same side.
	MinLabelDistance = 10.0
)

// LabelVisible reports whether a slice is wide enough to carry a label.
func LabelVisible(s Slice) bool {
	return s.Span() > math.Pi/30
}

// LabelPositions returns a label position for each slice of a pie with the
// given outer radius, in slice order. Labels sit on the 1.5x radius ring,
// pinned horizontally to the side of the circle their slice is on. Visible
// labels on the same side closer than MinLabelDistance are pushed apart,
// downwards on the right and upwards on the left.
func LabelPositions(slices []Slice, outerRadius float64) []Point {
	r := outerRadius * LabelFactor
	pos := make([]Point, len(slices))
	for i, s := range slices {
		p := Centroid(s, r)
		if MidAngle(s) < math.Pi {
			p.X = r
		} else {
			p.X = -r
		}
		pos[i] = p
	}

	for i := 0; i < len(slices)-1; i++ {
		if !LabelVisible(slices[i]) {
			continue
		}
		for j := i + 1; j < len(slices); j++ {
			if !LabelVisible(slices[j]) {
				continue
			}
			a, b := pos[i], pos[j]
			if a.X*b.X <= 0 {
				continue
			}
			if o := MinLabelDistance - math.Abs(b.Y-a.Y); o > 0 {
				pos[j].Y += sign(b.X) * o
			}
		}
	}
	return pos
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
