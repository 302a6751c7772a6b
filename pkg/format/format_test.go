package format

import (
	"testing"

	"github.com/matzehuels/chartkit/pkg/errors"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		locale string
		v      float64
		want   string
	}{
		{"en", 0, "0"},
		{"en", 42, "42"},
		{"en", 1234567, "1,234,567"},
		{"en", 1234.5, "1,234.5"},
		{"en", -12.25, "-12.25"},
		{"de", 1234.5, "1.234,5"},
		{"", 1000, "1,000"},
	}
	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.want, func(t *testing.T) {
			f, err := NewFormatter(tt.locale)
			if err != nil {
				t.Fatal(err)
			}
			if got := f.Format(tt.v); got != tt.want {
				t.Errorf("Format(%g) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestFixed(t *testing.T) {
	f := Default()
	tests := []struct {
		v         float64
		precision int
		want      string
	}{
		{12.5, 2, "12.50"},
		{1000, 0, "1,000"},
		{3, 1, "3.0"},
		{7, -1, "7"},
	}
	for _, tt := range tests {
		if got := f.Fixed(tt.v, tt.precision); got != tt.want {
			t.Errorf("Fixed(%g, %d) = %q, want %q", tt.v, tt.precision, got, tt.want)
		}
	}
}

func TestNewFormatterInvalid(t *testing.T) {
	_, err := NewFormatter("not a locale!")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func TestNumber(t *testing.T) {
	if got := Number(9876.5); got != "9,876.5" {
		t.Errorf("Number() = %q", got)
	}
	if Default().Locale() != "en" {
		t.Errorf("default locale = %q", Default().Locale())
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"12", 4, "12\u2007\u2007"},
		{"1234", 4, "1234"},
		{"12345", 4, "12345"},
		{"€1", 3, "€1\u2007"},
		{"", 0, ""},
	}
	for _, tt := range tests {
		if got := Pad(tt.s, tt.width); got != tt.want {
			t.Errorf("Pad(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}

func TestTrimLabel(t *testing.T) {
	tests := []struct {
		s    string
		max  int
		want string
	}{
		{"  short  ", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"a much longer label", 10, "a much lon..."},
		{"ünïcödé label", 5, "ünïcö..."},
		{"anything", -1, "anything"},
	}
	for _, tt := range tests {
		if got := TrimLabel(tt.s, tt.max); got != tt.want {
			t.Errorf("TrimLabel(%q, %d) = %q, want %q", tt.s, tt.max, got, tt.want)
		}
	}
}

func TestEscapeLabel(t *testing.T) {
	in := `<b class="x">Tom & Jerry's `+"`"+`show`+"`"+`</b>`
	want := "&lt;b class=&quot;x&quot;&gt;Tom &amp; Jerry&#x27;s &#x60;show&#x60;&lt;/b&gt;"
	if got := EscapeLabel(in); got != want {
		t.Errorf("EscapeLabel() = %q, want %q", got, want)
	}
}
