package animate

import (
	"math"
	"strconv"
	"strings"
)

// MaxPrecision caps the number of decimals a count will display.
const MaxPrecision = 10

// Precision returns the number of fractional digits in the shortest decimal
// form of v, so 12.5 has precision 1 and 3 has precision 0.
func Precision(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return fractionDigits(strconv.FormatFloat(v, 'f', -1, 64))
}

// PrecisionOf returns the number of fractional digits written in a numeric
// literal. Unlike Precision it keeps trailing zeros: "12.50" has precision
// 2. Literals in exponent form fall back to Precision of their value.
func PrecisionOf(literal string) int {
	s := strings.TrimSpace(literal)
	if strings.ContainsAny(s, "eE") {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return Precision(v)
	}
	return fractionDigits(s)
}

func fractionDigits(s string) int {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return 0
	}
	return min(len(s)-dot-1, MaxPrecision)
}

// Round rounds v to the given number of decimals. Negative precision is
// treated as zero.
func Round(v float64, precision int) float64 {
	p := math.Pow(10, float64(clampPrecision(precision)))
	return math.Round(v*p) / p
}

// FormatFixed renders v with exactly precision decimals.
func FormatFixed(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', clampPrecision(precision), 64)
}

func clampPrecision(p int) int {
	return max(0, min(p, MaxPrecision))
}
