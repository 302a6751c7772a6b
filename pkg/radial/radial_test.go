package radial

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestTextAnchor(t *testing.T) {
	tests := []struct {
		name  string
		slice Slice
		want  Anchor
	}{
		{"right half", Slice{StartAngle: 0, EndAngle: math.Pi}, Start},
		{"left half", Slice{StartAngle: math.Pi, EndAngle: 2 * math.Pi}, End},
		{"mid angle exactly pi", Slice{StartAngle: 0, EndAngle: 2 * math.Pi}, End},
		{"just before pi", Slice{StartAngle: 0, EndAngle: 2*math.Pi - 1e-9}, Start},
		{"thin slice at top", Slice{StartAngle: 0, EndAngle: 0.01}, Start},
		{"thin slice before top", Slice{StartAngle: 6.2, EndAngle: 6.28}, End},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TextAnchor(tt.slice); got != tt.want {
				t.Errorf("TextAnchor() = %q, want %q (mid %v)", got, tt.want, MidAngle(tt.slice))
			}
		})
	}
}

func TestCentroid(t *testing.T) {
	tests := []struct {
		mid  float64
		want Point
	}{
		{0, Point{0, -10}},
		{math.Pi / 2, Point{10, 0}},
		{math.Pi, Point{0, 10}},
		{3 * math.Pi / 2, Point{-10, 0}},
	}
	for _, tt := range tests {
		got := Centroid(Slice{StartAngle: tt.mid, EndAngle: tt.mid}, 10)
		if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
			t.Errorf("Centroid(mid=%v) = %v, want %v", tt.mid, got, tt.want)
		}
	}
}

func TestPlaceLabelEndsAtPos(t *testing.T) {
	s := Slice{StartAngle: 0, EndAngle: 1.0}
	pos := Point{50, 40}
	g := PlaceLabel(s, pos, Options{Radius: 100})

	if g.Pos != pos {
		t.Errorf("Pos = %v, want %v", g.Pos, pos)
	}
	if p := g.Path(); p[2] != pos {
		t.Errorf("leader ends at %v, want %v", p[2], pos)
	}
	if !near(g.Outer.Y, pos.Y) {
		t.Errorf("outer bend at height %v, want %v", g.Outer.Y, pos.Y)
	}
	// outer lies on the same ray as inner
	if !near(g.Outer.X*g.Inner.Y, g.Outer.Y*g.Inner.X) {
		t.Errorf("outer %v not on the ray through inner %v", g.Outer, g.Inner)
	}
	if g.Anchor != Start {
		t.Errorf("Anchor = %q", g.Anchor)
	}
}

func TestPlaceLabelDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		slice Slice
		pos   Point
	}{
		{"label on horizontal axis", Slice{StartAngle: 0, EndAngle: 1}, Point{150, 0}},
		{"centroid on horizontal axis", Slice{StartAngle: 0, EndAngle: math.Pi}, Point{150, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := PlaceLabel(tt.slice, tt.pos, Options{Radius: 100})
			if g.Outer != g.Inner {
				t.Errorf("Outer = %v, want Inner %v", g.Outer, g.Inner)
			}
			for _, v := range []float64{g.Outer.X, g.Outer.Y} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Errorf("non-finite bend %v", g.Outer)
				}
			}
		})
	}
}

func TestPlaceLabelStrings(t *testing.T) {
	s := Slice{StartAngle: 0, EndAngle: math.Pi, Label: "  A very long label  "}
	pos := Point{150, 0}

	g := PlaceLabel(s, pos, Options{Radius: 100, Trim: true})
	if g.Line != "M100,0L100,0L150,0" {
		t.Errorf("Line = %q", g.Line)
	}
	if g.Text != "A very lon..." {
		t.Errorf("Text = %q", g.Text)
	}
	if g.StyleTransform != "translate3d(150px,0px, 0)" || g.AttrTransform != "" {
		t.Errorf("transforms = %q / %q", g.StyleTransform, g.AttrTransform)
	}

	g = PlaceLabel(s, pos, Options{Radius: 100, LegacyTransform: true})
	if g.AttrTransform != "translate(150,0)" || g.StyleTransform != "" {
		t.Errorf("legacy transforms = %q / %q", g.StyleTransform, g.AttrTransform)
	}
	if g.Text != s.Label {
		t.Errorf("untrimmed Text = %q", g.Text)
	}
}

func TestPlaceLabelExplode(t *testing.T) {
	s := Slice{StartAngle: 0, EndAngle: math.Pi, Value: 25}
	g := PlaceLabel(s, Point{150, 0}, Options{Radius: 100, Explode: true, Max: 100})
	if !near(g.Inner.X, 25) || !near(g.Inner.Y, 0) {
		t.Errorf("exploded inner = %v, want 25,0", g.Inner)
	}

	g = PlaceLabel(s, Point{150, 0}, Options{Radius: 100, Explode: true})
	if !near(g.Inner.X, 100) {
		t.Errorf("explode without max should use the radius, got %v", g.Inner)
	}
}

func TestPlaceLabelAllAngles(t *testing.T) {
	for a := 0.0; a < 2*math.Pi; a += 0.05 {
		s := Slice{StartAngle: a, EndAngle: a + 0.05}
		pos := LabelPositions([]Slice{s}, 80)[0]
		g := PlaceLabel(s, pos, Options{Radius: 80})
		for _, v := range []float64{g.Inner.X, g.Inner.Y, g.Outer.X, g.Outer.Y} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("angle %v: non-finite geometry %+v", a, g)
			}
		}
		if (pos.X > 0) != (g.Anchor == Start) {
			t.Errorf("angle %v: label at x=%v with anchor %q", a, pos.X, g.Anchor)
		}
	}
}

func TestPie(t *testing.T) {
	s := Pie([]float64{1, 1, 2}, "a", "b")
	want := [][2]float64{{0, math.Pi / 2}, {math.Pi / 2, math.Pi}, {math.Pi, 2 * math.Pi}}
	for i, w := range want {
		if !near(s[i].StartAngle, w[0]) || !near(s[i].EndAngle, w[1]) {
			t.Errorf("slice %d = [%v, %v], want %v", i, s[i].StartAngle, s[i].EndAngle, w)
		}
	}
	if s[0].Label != "a" || s[1].Label != "b" || s[2].Label != "" {
		t.Errorf("labels = %q %q %q", s[0].Label, s[1].Label, s[2].Label)
	}

	for _, sl := range Pie([]float64{0, 0}) {
		if sl.StartAngle != 0 || sl.EndAngle != 0 {
			t.Errorf("all-zero pie produced %+v", sl)
		}
	}

	s = Pie([]float64{-5, 3, math.NaN(), 3})
	if s[0].Span() != 0 || s[2].Span() != 0 || !near(s[1].Span(), math.Pi) {
		t.Errorf("negative/NaN values should get no angle: %+v", s)
	}
}

func TestLabelPositions(t *testing.T) {
	slices := []Slice{
		{StartAngle: 0, EndAngle: 0.2},
		{StartAngle: 0.2, EndAngle: 0.4},
		{StartAngle: 0.4, EndAngle: 0.45},
		{StartAngle: 5.9, EndAngle: 6.02},
		{StartAngle: 6.02, EndAngle: 6.14},
	}
	pos := LabelPositions(slices, 100)

	if pos[0].X != 150 || pos[1].X != 150 || pos[3].X != -150 {
		t.Errorf("x not pinned to 1.5r: %v", pos)
	}
	if d := pos[1].Y - pos[0].Y; !near(d, MinLabelDistance) {
		t.Errorf("right labels %v apart, want pushed down to %v", d, MinLabelDistance)
	}
	if d := pos[3].Y - pos[4].Y; !near(d, MinLabelDistance) {
		t.Errorf("left labels %v apart, want pushed up to %v", d, MinLabelDistance)
	}
	if c := Centroid(slices[2], 150); !near(pos[2].Y, c.Y) {
		t.Errorf("invisible label moved: %v, want y %v", pos[2], c.Y)
	}
}

func TestLabelVisible(t *testing.T) {
	if LabelVisible(Slice{StartAngle: 0, EndAngle: math.Pi / 30}) {
		t.Error("span of exactly pi/30 should be hidden")
	}
	if !LabelVisible(Slice{StartAngle: 0, EndAngle: 0.2}) {
		t.Error("0.2 rad slice should be visible")
	}
}
