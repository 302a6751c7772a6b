package radial

import (
	"math"
	"strconv"
)

// Point is a position relative to the pie centre.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// String renders the point as "x,y".
func (p Point) String() string {
	return num(p.X) + "," + num(p.Y)
}

// Scale multiplies both coordinates by k.
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// Slice describes one arc of a pie.
type Slice struct {
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	Value      float64 `json:"value"`
	Label      string  `json:"label,omitempty"`
}

// Span returns the angular width of the slice.
func (s Slice) Span() float64 { return s.EndAngle - s.StartAngle }

// MidAngle returns the angle halfway through the slice.
func MidAngle(s Slice) float64 {
	return s.StartAngle + (s.EndAngle-s.StartAngle)/2
}

// Anchor is the side of a label its text is aligned to.
type Anchor string

const (
	Start Anchor = "start"
	End   Anchor = "end"
)

// TextAnchor returns Start for slices centred on the right half of the
// circle and End otherwise. A mid angle of exactly π yields End.
func TextAnchor(s Slice) Anchor {
	if MidAngle(s) < math.Pi {
		return Start
	}
	return End
}

// Centroid returns the point at radius r on the slice's mid angle.
func Centroid(s Slice, r float64) Point {
	a := MidAngle(s) - math.Pi/2
	return Point{math.Cos(a) * r, math.Sin(a) * r}
}

// Pie lays out values as consecutive slices covering the full circle in
// input order. Negative and non-finite values get no angle. When every
// value is zero all slices collapse to angle 0.
func Pie(values []float64, labels ...string) []Slice {
	total := 0.0
	for _, v := range values {
		total += weight(v)
	}
	k := 0.0
	if total > 0 {
		k = 2 * math.Pi / total
	}

	slices := make([]Slice, len(values))
	angle := 0.0
	for i, v := range values {
		end := angle + weight(v)*k
		slices[i] = Slice{StartAngle: angle, EndAngle: end, Value: v}
		if i < len(labels) {
			slices[i].Label = labels[i]
		}
		angle = end
	}
	return slices
}

// weight treats negative and non-finite values as empty slices.
func weight(v float64) float64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
