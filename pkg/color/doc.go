// Package color assigns colors to data keys.
//
// # Schemes
//
// A [Scheme] is a named palette plus the [Kind] of mapping it performs:
//
//   - [Ordinal]: colors by the stable index of a key within the domain,
//     cycling when there are more keys than colors.
//   - [Linear]: a numeric value is normalised against the domain extent and
//     blended along an evenly spaced color ramp.
//   - [Quantile]: the domain values are split into as many quantile bins as
//     there are colors, and a value takes the color of its bin.
//
// The built-in palettes are available through [Lookup] and [Names].
//
// # Resolution Order
//
// [Encoder.Resolve] checks, in order:
//
//  1. The override mapping. An override is returned verbatim.
//  2. The scheme over the domain.
//  3. The fallback color, for keys that are neither overridden nor in the
//     domain. The miss is reported to [observability.ColorHooks] so callers
//     can log it as a data-quality signal; it is never an error.
//
// Resolution is deterministic: the same scheme, domain, overrides and key
// always produce the same color.
//
// [observability.ColorHooks]: github.com/matzehuels/chartkit/pkg/observability
package color
