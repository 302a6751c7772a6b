package textfit

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/chartkit/pkg/errors"
)

var regular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// TextElement is an Element that lays out a string in Go Regular at a base
// font size times its scale.
type TextElement struct {
	text  string
	size  float64
	font  *opentype.Font
	scale float64
	face  font.Face
}

// NewTextElement lays out text at size points (72 DPI, so points equal
// pixels) with scale 1.
func NewTextElement(text string, size float64) (*TextElement, error) {
	if err := errors.ValidateDimension("font size", size); err != nil {
		return nil, err
	}
	f, err := regular()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse embedded font")
	}
	t := &TextElement{text: text, size: size, font: f}
	t.SetScale(1)
	return t, nil
}

// Text returns the laid out string.
func (t *TextElement) Text() string { return t.text }

// SetText replaces the string, keeping the current scale.
func (t *TextElement) SetText(s string) { t.text = s }

// Scale returns the current scale.
func (t *TextElement) Scale() float64 { return t.scale }

// FontSize returns the effective font size in pixels.
func (t *TextElement) FontSize() float64 { return t.size * t.scale }

// SetScale rebuilds the font face at the scaled size. Scales that produce
// an empty face leave the element unmeasurable until rescaled.
func (t *TextElement) SetScale(scale float64) {
	t.scale = scale
	if t.face != nil {
		_ = t.face.Close()
		t.face = nil
	}
	if t.size*scale <= 0 {
		return
	}
	face, err := opentype.NewFace(t.font, &opentype.FaceOptions{
		Size:    t.size * scale,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return
	}
	t.face = face
}

// Measure returns the advance width of the text and the line height of the
// face. Empty text measures as zero, like text that has not been laid out.
func (t *TextElement) Measure() Size {
	if t.text == "" || t.face == nil {
		return Size{}
	}
	m := t.face.Metrics()
	return Size{
		Width:  toFloat(font.MeasureString(t.face, t.text)),
		Height: toFloat(m.Ascent + m.Descent),
	}
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
