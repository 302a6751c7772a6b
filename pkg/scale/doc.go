// Package scale maps data domains onto pixel ranges.
//
// # Linear Scales
//
// A [Linear] scale maps a continuous [Domain] onto a pixel interval. The
// domain is derived from every value the chart must show, including a
// "previous" comparison value when there is one, so a transition from the
// old value to the new one stays inside the axis:
//
//	d := scale.DomainOf(value, previous)
//	s := scale.NewLinear(d, 0, dims.Width)
//	x := s.Map(value)
//
// When the domain collapses to a single value (min == max) every input maps
// to the midpoint of the range instead of dividing by zero.
//
// # Growing Domains
//
// Charts that live across several updates keep their domain and call
// [Domain.Include] with each new value. Include only ever widens the domain,
// so positions drawn for earlier values stay monotonically consistent.
//
// # Band Scales
//
// A [Band] scale subdivides the range into equal bands, one per distinct
// category key, with configurable inner/outer padding and alignment.
//
// Scales are cheap value types. Rebuild them on every data update instead of
// caching them: a stale scale misrenders as soon as the domain grows.
package scale
