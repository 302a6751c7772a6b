package scale

// Band divides a pixel range into equal bands, one per distinct key.
type Band struct {
	keys      []string
	index     map[string]int
	start     float64
	step      float64
	bandwidth float64
}

type bandOptions struct {
	paddingInner float64
	paddingOuter float64
	align        float64
}

// BandOption configures a Band scale.
type BandOption func(*bandOptions)

// WithPadding sets the inner padding (fraction of the step left empty between
// bands, in [0, 1]) and the outer padding (in steps, before the first and
// after the last band).
func WithPadding(inner, outer float64) BandOption {
	return func(o *bandOptions) {
		o.paddingInner = min(1, max(0, inner))
		o.paddingOuter = max(0, outer)
	}
}

// WithAlign positions the bands within any leftover space: 0 packs them at
// the start, 1 at the end, 0.5 (the default) centres them.
func WithAlign(align float64) BandOption {
	return func(o *bandOptions) { o.align = min(1, max(0, align)) }
}

// NewBand builds a band scale over keys mapped onto [0, length]. Duplicate
// keys are dropped; the first occurrence fixes the order.
func NewBand(keys []string, length float64, opts ...BandOption) Band {
	o := bandOptions{align: 0.5}
	for _, opt := range opts {
		opt(&o)
	}

	b := Band{index: make(map[string]int, len(keys))}
	for _, k := range keys {
		if _, ok := b.index[k]; ok {
			continue
		}
		b.index[k] = len(b.keys)
		b.keys = append(b.keys, k)
	}

	n := float64(len(b.keys))
	start, stop := 0.0, length
	if stop < start {
		start, stop = stop, start
	}

	b.step = (stop - start) / max(1, n-o.paddingInner+o.paddingOuter*2)
	b.start = start + (stop-start-b.step*(n-o.paddingInner))*o.align
	b.bandwidth = b.step * (1 - o.paddingInner)
	return b
}

// Map returns the start position of key's band. ok is false for keys outside
// the domain.
func (b Band) Map(key string) (pos float64, ok bool) {
	i, ok := b.index[key]
	if !ok {
		return 0, false
	}
	return b.start + b.step*float64(i), true
}

// Keys returns the de-duplicated domain in order.
func (b Band) Keys() []string { return append([]string(nil), b.keys...) }

// Bandwidth returns the width of a single band.
func (b Band) Bandwidth() float64 { return b.bandwidth }

// Step returns the distance between the starts of adjacent bands.
func (b Band) Step() float64 { return b.step }
