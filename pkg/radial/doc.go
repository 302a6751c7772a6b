// Package radial computes label geometry for pie and donut charts.
//
// Angles are in radians, measured clockwise from twelve o'clock, with the
// y axis pointing down as on a screen. A slice whose mid angle is below π
// lies on the right half of the circle and its label is left aligned
// ([Start]); everything else, including a mid angle of exactly π, is right
// aligned ([End]).
//
// [PlaceLabel] draws a three point leader line from the slice's arc to a
// label position. [LabelPositions] picks those positions for a whole pie,
// pinning labels to either side of the circle and pushing apart labels
// that would overlap.
package radial
