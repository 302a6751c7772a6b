package color

import (
	"math"
	"slices"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/chartkit/pkg/observability"
)

// Encoder resolves keys and values to colors for one render of one chart.
// It is rebuilt on every data update and is safe for concurrent reads.
type Encoder struct {
	scheme     Scheme
	domain     []string
	index      map[string]int
	values     []float64
	sorted     []float64
	thresholds []float64
	ramp       []colorful.Color
	overrides  map[string]string
	overrideFn func(key string) (string, bool)
	fallback   string
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithOverrides sets explicit colors for individual keys. Overrides take
// precedence over the scheme and are returned exactly as given.
func WithOverrides(m map[string]string) Option {
	return func(e *Encoder) {
		if len(m) == 0 {
			return
		}
		e.overrides = make(map[string]string, len(m))
		for k, v := range m {
			e.overrides[k] = v
		}
	}
}

// WithOverrideFunc sets a function consulted after the override mapping.
// Returning false defers to the scheme.
func WithOverrideFunc(fn func(key string) (string, bool)) Option {
	return func(e *Encoder) { e.overrideFn = fn }
}

// WithFallback replaces the color used for unresolvable keys.
func WithFallback(c string) Option {
	return func(e *Encoder) {
		if c != "" {
			e.fallback = c
		}
	}
}

// WithValues pairs numeric values with the domain keys for linear and
// quantile schemes. values[i] belongs to domain[i]. Without it the keys
// themselves are parsed as numbers.
func WithValues(values []float64) Option {
	return func(e *Encoder) { e.values = slices.Clone(values) }
}

// NewEncoder builds an encoder for scheme s over the ordered domain keys.
// Duplicate keys keep their first position.
func NewEncoder(s Scheme, domain []string, opts ...Option) *Encoder {
	e := &Encoder{
		scheme:   s,
		index:    make(map[string]int, len(domain)),
		fallback: Fallback,
	}
	for _, k := range domain {
		if _, dup := e.index[k]; dup {
			continue
		}
		e.index[k] = len(e.domain)
		e.domain = append(e.domain, k)
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.values == nil {
		for _, k := range e.domain {
			v, err := strconv.ParseFloat(k, 64)
			if err != nil {
				v = math.NaN()
			}
			e.values = append(e.values, v)
		}
	}
	for _, v := range e.values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			e.sorted = append(e.sorted, v)
		}
	}
	slices.Sort(e.sorted)

	switch s.Kind {
	case Linear:
		for _, c := range s.Colors {
			if parsed, err := colorful.Hex(c); err == nil {
				e.ramp = append(e.ramp, parsed)
			}
		}
	case Quantile:
		e.thresholds = quantileThresholds(e.sorted, len(s.Colors))
	}
	return e
}

// Scheme returns the scheme the encoder applies.
func (e *Encoder) Scheme() Scheme { return e.scheme }

// Domain returns the de-duplicated domain keys in order.
func (e *Encoder) Domain() []string { return slices.Clone(e.domain) }

// Resolve returns the color for key. Unknown keys yield the fallback color
// and are reported through the color hooks.
func (e *Encoder) Resolve(key string) string {
	if c, ok := e.Lookup(key); ok {
		return c
	}
	observability.Color().OnMissingKey(e.scheme.Name, key)
	return e.fallback
}

// Lookup is Resolve without the fallback: ok is false when key has neither
// an override nor a color from the scheme.
func (e *Encoder) Lookup(key string) (string, bool) {
	if c, ok := e.overrides[key]; ok {
		return c, true
	}
	if e.overrideFn != nil {
		if c, ok := e.overrideFn(key); ok {
			return c, true
		}
	}
	if len(e.scheme.Colors) == 0 {
		return "", false
	}

	i, inDomain := e.index[key]
	if e.scheme.Kind == Ordinal || e.scheme.Kind == "" {
		if !inDomain {
			return "", false
		}
		return e.scheme.Colors[i%len(e.scheme.Colors)], true
	}

	var v float64
	if inDomain && i < len(e.values) {
		v = e.values[i]
	} else {
		parsed, err := strconv.ParseFloat(key, 64)
		if err != nil {
			return "", false
		}
		v = parsed
	}
	return e.lookupValue(v)
}

// ResolveValue returns the color for a numeric value. Ordinal schemes
// resolve the value's shortest decimal form as a key.
func (e *Encoder) ResolveValue(v float64) string {
	if e.scheme.Kind == Ordinal || e.scheme.Kind == "" {
		return e.Resolve(strconv.FormatFloat(v, 'f', -1, 64))
	}
	if c, ok := e.lookupValue(v); ok {
		return c
	}
	observability.Color().OnMissingKey(e.scheme.Name, strconv.FormatFloat(v, 'g', -1, 64))
	return e.fallback
}

// lookupValue maps v through the linear ramp or the quantile bins.
func (e *Encoder) lookupValue(v float64) (string, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || len(e.sorted) == 0 {
		return "", false
	}
	switch e.scheme.Kind {
	case Linear:
		return e.rampAt(e.position(v))
	case Quantile:
		i, _ := slices.BinarySearchFunc(e.thresholds, v, func(t, target float64) int {
			if t <= target {
				return -1
			}
			return 1
		})
		return e.scheme.Colors[i], true
	}
	return "", false
}

// position normalises v against the numeric domain extent, clamped to [0,1].
// A degenerate extent maps everything to the middle of the ramp.
func (e *Encoder) position(v float64) float64 {
	lo, hi := e.sorted[0], e.sorted[len(e.sorted)-1]
	if lo == hi {
		return 0.5
	}
	return math.Max(0, math.Min(1, (v-lo)/(hi-lo)))
}

// rampAt interpolates the scheme colours, spaced evenly over [0,1], at t.
func (e *Encoder) rampAt(t float64) (string, bool) {
	switch len(e.ramp) {
	case 0:
		return "", false
	case 1:
		return e.ramp[0].Hex(), true
	}
	seg := t * float64(len(e.ramp)-1)
	i := int(math.Floor(seg))
	if i >= len(e.ramp)-1 {
		return e.ramp[len(e.ramp)-1].Hex(), true
	}
	return e.ramp[i].BlendRgb(e.ramp[i+1], seg-float64(i)).Hex(), true
}

// quantileThresholds splits sorted into n bins and returns the n-1 inner
// boundaries, interpolating between neighbours.
func quantileThresholds(sorted []float64, n int) []float64 {
	if len(sorted) == 0 || n < 2 {
		return nil
	}
	out := make([]float64, 0, n-1)
	for i := 1; i < n; i++ {
		out = append(out, quantile(sorted, float64(i)/float64(n)))
	}
	return out
}

func quantile(sorted []float64, p float64) float64 {
	pos := float64(len(sorted)-1) * p
	i := int(math.Floor(pos))
	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (sorted[i+1]-sorted[i])*(pos-float64(i))
}

// Resolve is the one-shot form of Encoder.Resolve.
func Resolve(s Scheme, domain []string, overrides map[string]string, key string) string {
	return NewEncoder(s, domain, WithOverrides(overrides)).Resolve(key)
}
