package errors

import (
	"math"
	"regexp"
)

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ValidateDimension rejects sizes that cannot describe a drawing surface:
// NaN, infinities and negative values. Zero is allowed (a collapsed chart).
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidDimension, "%s must be a finite number", name)
	}
	if v < 0 {
		return New(ErrCodeInvalidDimension, "%s cannot be negative (got %g)", name, v)
	}
	return nil
}

// ValidateHexColor checks that s is a CSS hex color (#rgb, #rrggbb or #rrggbbaa).
func ValidateHexColor(s string) error {
	if !hexColorPattern.MatchString(s) {
		return New(ErrCodeInvalidColor, "invalid hex color %q", s)
	}
	return nil
}
