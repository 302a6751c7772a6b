package layout

// Margins holds the outer spacing in CSS order: top, right, bottom, left.
type Margins [4]float64

// DefaultMargins is the spacing used by gauges and cards when none is given.
var DefaultMargins = Margins{10, 20, 10, 20}

// Top returns the top margin.
func (m Margins) Top() float64 { return m[0] }

// Right returns the right margin.
func (m Margins) Right() float64 { return m[1] }

// Bottom returns the bottom margin.
func (m Margins) Bottom() float64 { return m[2] }

// Left returns the left margin.
func (m Margins) Left() float64 { return m[3] }

// Horizontal returns left + right.
func (m Margins) Horizontal() float64 { return m[1] + m[3] }

// Vertical returns top + bottom.
func (m Margins) Vertical() float64 { return m[0] + m[2] }

// ViewDimensions is the usable plotting area inside the margins.
// Both fields are always >= 0.
type ViewDimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// XOffset is the horizontal shift of the plot origin caused by a
	// reserved y-axis band.
	XOffset float64 `json:"x_offset,omitempty"`
}

// Empty reports whether either side collapsed to zero.
func (d ViewDimensions) Empty() bool { return d.Width <= 0 || d.Height <= 0 }

// Center returns the centre of the plotting area in outer coordinates,
// i.e. shifted by the left and top margins.
func (d ViewDimensions) Center(m Margins) (x, y float64) {
	return m.Left() + d.XOffset + d.Width/2, m.Top() + d.Height/2
}

type options struct {
	xAxisHeight float64
	yAxisWidth  float64
	legendWidth float64
}

// Option reserves extra space inside the margins.
type Option func(*options)

// WithXAxis reserves a band of the given height below the plot for an x axis.
func WithXAxis(height float64) Option { return func(o *options) { o.xAxisHeight = max(0, height) } }

// WithYAxis reserves a band of the given width left of the plot for a y axis.
// The plot origin moves right by the same amount (see ViewDimensions.XOffset).
func WithYAxis(width float64) Option { return func(o *options) { o.yAxisWidth = max(0, width) } }

// WithLegend reserves a column of the given width on the right for a legend.
func WithLegend(width float64) Option { return func(o *options) { o.legendWidth = max(0, width) } }

// Calculate returns the inner plotting area for an outer size and margin:
//
//	{max(0, width-left-right), max(0, height-top-bottom)}
//
// minus any space reserved through options.
func Calculate(width, height float64, m Margins, opts ...Option) ViewDimensions {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	w := width - m.Horizontal() - o.yAxisWidth - o.legendWidth
	h := height - m.Vertical() - o.xAxisHeight

	return ViewDimensions{
		Width:   max(0, w),
		Height:  max(0, h),
		XOffset: o.yAxisWidth,
	}
}
