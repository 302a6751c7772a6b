package color

import (
	"slices"

	"github.com/matzehuels/chartkit/pkg/errors"
)

// Kind selects how a scheme maps keys to colors.
type Kind string

const (
	Ordinal  Kind = "ordinal"
	Linear   Kind = "linear"
	Quantile Kind = "quantile"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case Ordinal, Linear, Quantile:
		return true
	}
	return false
}

// Fallback is returned for keys that cannot be resolved.
const Fallback = "#a8a8a8"

// Scheme is a named palette and the way it is applied.
type Scheme struct {
	Name   string
	Kind   Kind
	Colors []string
}

// WithKind returns a copy of s applied with a different kind. Any palette
// can be used as a ramp or as a set of categorical colors.
func (s Scheme) WithKind(k Kind) Scheme {
	s.Kind = k
	return s
}

var schemes = map[string]Scheme{
	"vivid": {Name: "vivid", Kind: Ordinal, Colors: []string{
		"#647c8a", "#3f51b5", "#2196f3", "#00b862", "#afdf0a",
		"#a7b61a", "#f3e562", "#ff9800", "#ff5722", "#ff4514",
	}},
	"natural": {Name: "natural", Kind: Ordinal, Colors: []string{
		"#bf9d76", "#e99450", "#d89f59", "#f2dfa7", "#a5d7c6",
		"#7794b1", "#afafaf", "#707160", "#ba9383", "#d9d5c3",
	}},
	"cool": {Name: "cool", Kind: Ordinal, Colors: []string{
		"#a8385d", "#7aa3e5", "#a27ea8", "#aae3f5", "#adcded",
		"#a95963", "#8796c0", "#7ed3ed", "#50abcc", "#ad6886",
	}},
	"fire": {Name: "fire", Kind: Ordinal, Colors: []string{
		"#ff3d00", "#bf360c", "#ff8f00", "#ff6f00", "#ff5722",
		"#e65100", "#ffca28", "#ffab00",
	}},
	"solar": {Name: "solar", Kind: Linear, Colors: []string{
		"#fff8e1", "#ffecb3", "#ffe082", "#ffd54f", "#ffca28",
		"#ffc107", "#ffb300", "#ffa000", "#ff8f00", "#ff6f00",
	}},
	"air": {Name: "air", Kind: Linear, Colors: []string{
		"#e1f5fe", "#b3e5fc", "#81d4fa", "#4fc3f7", "#29b6f6",
		"#03a9f4", "#039be5", "#0288d1", "#0277bd", "#01579b",
	}},
	"aqua": {Name: "aqua", Kind: Linear, Colors: []string{
		"#e0f7fa", "#b2ebf2", "#80deea", "#4dd0e1", "#26c6da",
		"#00bcd4", "#00acc1", "#0097a7", "#00838f", "#006064",
	}},
	"flame": {Name: "flame", Kind: Ordinal, Colors: []string{
		"#A10A28", "#D3342D", "#EF6D49", "#FAAD67", "#FDDE90",
		"#DBED91", "#A9D770", "#6CBA67", "#2C9653", "#146738",
	}},
	"ocean": {Name: "ocean", Kind: Ordinal, Colors: []string{
		"#1D68FB", "#33C0FC", "#4AFFFE", "#AFFFFF", "#FFFC63",
		"#FDBD2D", "#FC8A25", "#FA4F1E", "#FA141B", "#BA38D1",
	}},
	"forest": {Name: "forest", Kind: Ordinal, Colors: []string{
		"#55C22D", "#C1F33D", "#3CC099", "#AFFFFF", "#8CFC9D",
		"#76CFFA", "#BA60FB", "#EE6490", "#C42A1C", "#FC9F32",
	}},
	"horizon": {Name: "horizon", Kind: Ordinal, Colors: []string{
		"#2597FB", "#65EBFD", "#99FDD0", "#FCEE4B", "#FEFCFA",
		"#FDD6E3", "#FCB1A8", "#EF6F7B", "#CB96E8", "#EFDEE0",
	}},
	"neons": {Name: "neons", Kind: Ordinal, Colors: []string{
		"#FF3333", "#FF33FF", "#CC33FF", "#0000FF", "#33CCFF",
		"#33FFFF", "#33FF66", "#CCFF33", "#FFCC00", "#FF6600",
	}},
	"picnic": {Name: "picnic", Kind: Ordinal, Colors: []string{
		"#FAC51D", "#66BD6D", "#FAA026", "#29BB9C", "#E96B56",
		"#55ACD2", "#B7332F", "#2C83C9", "#9166B8", "#92E7E8",
	}},
	"night": {Name: "night", Kind: Ordinal, Colors: []string{
		"#2B1B5A", "#501356", "#183356", "#28203F", "#391B3C",
		"#1E2B3C", "#120634", "#2D0432", "#051932", "#453080",
		"#75267D", "#2C507D", "#4B3880", "#752F7D", "#35547D",
	}},
	"nightLights": {Name: "nightLights", Kind: Ordinal, Colors: []string{
		"#4e31a5", "#9c25a7", "#3065ab", "#57468b", "#904497",
		"#46648b", "#32118d", "#a00fb3", "#1052a2", "#6e51bd",
		"#b63cc3", "#6c97cb", "#8671c1", "#b455be", "#7496c3",
	}},
}

// Lookup returns the built-in scheme with the given name.
func Lookup(name string) (Scheme, error) {
	s, ok := schemes[name]
	if !ok {
		return Scheme{}, errors.New(errors.ErrCodeInvalidScheme, "unknown color scheme %q", name)
	}
	s.Colors = slices.Clone(s.Colors)
	return s, nil
}

// Names returns the built-in scheme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewScheme builds a custom scheme after validating its kind and colors.
func NewScheme(name string, kind Kind, colors []string) (Scheme, error) {
	if !kind.Valid() {
		return Scheme{}, errors.New(errors.ErrCodeInvalidScheme, "unknown scheme kind %q", kind)
	}
	if len(colors) == 0 {
		return Scheme{}, errors.New(errors.ErrCodeInvalidScheme, "scheme %q has no colors", name)
	}
	for _, c := range colors {
		if err := errors.ValidateHexColor(c); err != nil {
			return Scheme{}, errors.Wrap(errors.ErrCodeInvalidScheme, err, "scheme %q", name)
		}
	}
	return Scheme{Name: name, Kind: kind, Colors: slices.Clone(colors)}, nil
}
