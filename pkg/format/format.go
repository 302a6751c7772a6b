// Package format turns chart values and labels into display strings.
//
// Numbers are formatted for a locale with golang.org/x/text, grouping
// digits and showing up to three fractional digits by default. Labels are
// trimmed to a maximum length and escaped for embedding in markup.
package format

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/matzehuels/chartkit/pkg/errors"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

// MaxFractionDigits is the number of decimals shown by Formatter.Format.
const MaxFractionDigits = 3

// FigureSpace has the width of a digit in most fonts.
const FigureSpace = '\u2007'

// ValueFunc formats a numeric value for display.
type ValueFunc func(v float64) string

// Formatter formats numbers for one locale.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewFormatter returns a Formatter for a BCP 47 locale such as "en" or
// "de-CH". An empty locale selects DefaultLocale.
func NewFormatter(locale string) (*Formatter, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid locale %q", locale)
	}
	return &Formatter{tag: tag, printer: message.NewPrinter(tag)}, nil
}

var defaultFormatter, _ = NewFormatter(DefaultLocale)

// Default returns the Formatter for DefaultLocale.
func Default() *Formatter { return defaultFormatter }

// Locale returns the formatter's language tag.
func (f *Formatter) Locale() string { return f.tag.String() }

// Format renders v with locale grouping and at most three decimals.
func (f *Formatter) Format(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(MaxFractionDigits)))
}

// Fixed renders v with locale grouping and exactly precision decimals.
func (f *Formatter) Fixed(v float64, precision int) string {
	precision = max(precision, 0)
	return f.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(precision),
		number.MaxFractionDigits(precision),
	))
}

// Func returns f.Format as a ValueFunc.
func (f *Formatter) Func() ValueFunc { return f.Format }

// Number formats v with the default locale.
func Number(v float64) string { return defaultFormatter.Format(v) }

// Pad right-pads s with figure spaces up to width runes so a counting
// value keeps a stable width. Longer strings are returned unchanged.
func Pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(string(FigureSpace), width-n)
}

// TrimLabel trims surrounding whitespace and shortens s to max runes,
// marking the cut with "...".
func TrimLabel(s string, max int) string {
	s = strings.TrimSpace(s)
	if max < 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max]) + "..."
}

var labelEscaper = strings.NewReplacer(
	"&", "&amp;",
	"'", "&#x27;",
	"`", "&#x60;",
	`"`, "&quot;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeLabel escapes the characters that are unsafe inside markup.
func EscapeLabel(s string) string {
	return labelEscaper.Replace(s)
}
