package layout

import "testing"

func TestCalculate(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		margins       Margins
		want          ViewDimensions
	}{
		{
			name:    "gauge default margins",
			width:   400,
			height:  300,
			margins: Margins{10, 20, 10, 20},
			want:    ViewDimensions{Width: 360, Height: 280},
		},
		{
			name:    "no margins",
			width:   200,
			height:  100,
			margins: Margins{},
			want:    ViewDimensions{Width: 200, Height: 100},
		},
		{
			name:    "margins larger than size",
			width:   30,
			height:  10,
			margins: Margins{50, 50, 50, 50},
			want:    ViewDimensions{},
		},
		{
			name:    "only width collapses",
			width:   30,
			height:  100,
			margins: Margins{10, 20, 10, 20},
			want:    ViewDimensions{Width: 0, Height: 80},
		},
		{
			name:    "zero outer size",
			width:   0,
			height:  0,
			margins: DefaultMargins,
			want:    ViewDimensions{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.width, tt.height, tt.margins)
			if got != tt.want {
				t.Errorf("Calculate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCalculateNeverNegative(t *testing.T) {
	for w := 0.0; w <= 100; w += 7 {
		for h := 0.0; h <= 100; h += 9 {
			for m := 0.0; m <= 120; m += 11 {
				d := Calculate(w, h, Margins{m, m, m, m})
				if d.Width < 0 || d.Height < 0 {
					t.Fatalf("Calculate(%v, %v, %v) = %+v, want non-negative", w, h, m, d)
				}
				if 2*m > w && d.Width != 0 {
					t.Fatalf("Calculate(%v, %v, %v).Width = %v, want 0", w, h, m, d.Width)
				}
			}
		}
	}
}

func TestCalculateWithReservedSpace(t *testing.T) {
	d := Calculate(400, 300, Margins{10, 20, 10, 20},
		WithXAxis(30),
		WithYAxis(40),
		WithLegend(60),
	)

	if d.Width != 260 {
		t.Errorf("Width = %v, want 260", d.Width)
	}
	if d.Height != 250 {
		t.Errorf("Height = %v, want 250", d.Height)
	}
	if d.XOffset != 40 {
		t.Errorf("XOffset = %v, want 40", d.XOffset)
	}
}

func TestNegativeReservationsIgnored(t *testing.T) {
	d := Calculate(100, 100, Margins{}, WithXAxis(-10), WithYAxis(-10), WithLegend(-10))
	if d != (ViewDimensions{Width: 100, Height: 100}) {
		t.Errorf("Calculate() = %+v, want 100x100", d)
	}
}

func TestCenter(t *testing.T) {
	m := Margins{10, 20, 10, 20}
	d := Calculate(400, 300, m)
	x, y := d.Center(m)
	if x != 200 || y != 150 {
		t.Errorf("Center() = (%v, %v), want (200, 150)", x, y)
	}
}

func TestMarginAccessors(t *testing.T) {
	m := Margins{1, 2, 3, 4}
	if m.Top() != 1 || m.Right() != 2 || m.Bottom() != 3 || m.Left() != 4 {
		t.Errorf("accessors = %v %v %v %v", m.Top(), m.Right(), m.Bottom(), m.Left())
	}
	if m.Horizontal() != 6 {
		t.Errorf("Horizontal() = %v, want 6", m.Horizontal())
	}
	if m.Vertical() != 4 {
		t.Errorf("Vertical() = %v, want 4", m.Vertical())
	}
}

func TestEmpty(t *testing.T) {
	if !(ViewDimensions{Width: 0, Height: 10}).Empty() {
		t.Error("zero width should be empty")
	}
	if (ViewDimensions{Width: 1, Height: 1}).Empty() {
		t.Error("1x1 should not be empty")
	}
}
