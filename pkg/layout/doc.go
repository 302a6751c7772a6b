// Package layout computes the usable plotting area of a chart.
//
// # Overview
//
// Every chart update starts here. The outer size of the chart (the space the
// host gives it) is reduced by a four-sided margin and, optionally, by the
// space reserved for axes and a side legend. The result is a [ViewDimensions]
// value that the scale, text-fit and label packages work against.
//
//	dims := layout.Calculate(400, 300, layout.Margins{10, 20, 10, 20})
//	// dims.Width == 360, dims.Height == 280
//
// Margins follow the CSS order: top, right, bottom, left.
//
// # Clamping
//
// Oversized margins never produce negative sizes. Each axis is clamped at
// zero independently, so a chart squeezed to nothing still lays out without
// special cases downstream.
package layout
