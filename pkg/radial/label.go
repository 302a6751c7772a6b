package radial

import (
	"fmt"

	"github.com/matzehuels/chartkit/pkg/format"
)

// DefaultTrimSize is the label length used when trimming is enabled.
const DefaultTrimSize = 10

// Options control label placement.
type Options struct {
	// Radius of the arc the leader line starts from.
	Radius float64

	// Explode starts each leader line at Radius*Value/Max instead of Radius,
	// matching slices whose radius grows with their value.
	Explode bool
	Max     float64

	// Trim shortens label text to TrimSize runes (DefaultTrimSize if 0).
	Trim     bool
	TrimSize int

	// LegacyTransform positions the label with a translate attribute
	// instead of a translate3d style, for surfaces without CSS transforms.
	LegacyTransform bool
}

// LabelGeometry is everything needed to draw one slice label.
type LabelGeometry struct {
	Inner  Point  `json:"inner"`
	Outer  Point  `json:"outer"`
	Pos    Point  `json:"pos"`
	Anchor Anchor `json:"anchor"`
	Line   string `json:"line"` // leader polyline as an SVG path
	Text   string `json:"text"`

	StyleTransform string `json:"style_transform,omitempty"`
	AttrTransform  string `json:"attr_transform,omitempty"`
}

// Path returns the leader line's three points in drawing order.
func (g LabelGeometry) Path() [3]Point {
	return [3]Point{g.Inner, g.Outer, g.Pos}
}

// PlaceLabel computes the leader line from slice s to a label at pos.
//
// The line starts at the slice centroid on the start radius and bends at
// that point scaled outwards to the label's height, ending exactly at pos.
// When either height is zero the bend sits on the start point.
func PlaceLabel(s Slice, pos Point, opts Options) LabelGeometry {
	r := opts.Radius
	if opts.Explode && opts.Max != 0 {
		r = opts.Radius * s.Value / opts.Max
	}

	inner := Centroid(s, r)
	k := 1.0
	if pos.Y != 0 && inner.Y != 0 {
		k = pos.Y / inner.Y
	}
	outer := inner.Scale(k)

	g := LabelGeometry{
		Inner:  inner,
		Outer:  outer,
		Pos:    pos,
		Anchor: TextAnchor(s),
		Line:   fmt.Sprintf("M%sL%sL%s", inner, outer, pos),
		Text:   s.Label,
	}
	if opts.Trim {
		size := opts.TrimSize
		if size <= 0 {
			size = DefaultTrimSize
		}
		g.Text = format.TrimLabel(s.Label, size)
	}
	if opts.LegacyTransform {
		g.AttrTransform = fmt.Sprintf("translate(%s,%s)", num(pos.X), num(pos.Y))
	} else {
		g.StyleTransform = fmt.Sprintf("translate3d(%spx,%spx, 0)", num(pos.X), num(pos.Y))
	}
	return g
}
