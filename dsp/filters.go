package dsp

import "math"

// FirstOrderKind selects which combination of the underlying all-pass
// section a FirstOrderFilter exposes.
type FirstOrderKind int

const (
	FirstOrderAllPass FirstOrderKind = iota
	FirstOrderLowPass
	FirstOrderHighPass
)

// FirstOrderFilter is a one-pole all-pass section with derived low-pass
// and high-pass outputs (spec.md §4.7). Coefficients are recomputed
// lazily whenever the effective cut-off changes.
type FirstOrderFilter struct {
	Kind       FirstOrderKind
	CutOff     *Parameter
	Enabled    *Parameter
	SampleRate float64

	c       float32
	oldCut  float32
	initial bool
	buf     float32
}

// NewFirstOrderFilter constructs a filter seeded so the first tick
// always computes its coefficient.
func NewFirstOrderFilter(kind FirstOrderKind, cutOff float32, sampleRate float64) *FirstOrderFilter {
	return &FirstOrderFilter{
		Kind:       kind,
		CutOff:     NewParameter(cutOff),
		Enabled:    NewParameter(1),
		SampleRate: sampleRate,
		oldCut:     cutOff - 1, // off by one: forces recompute on first tick
	}
}

func (f *FirstOrderFilter) recompute(fc float32) {
	if f.initial && fc == f.oldCut {
		return
	}
	t := math.Tan(math.Pi * float64(fc) / f.SampleRate)
	f.c = float32((t - 1) / (t + 1))
	f.oldCut = fc
	f.initial = true
}

func (f *FirstOrderFilter) Tick(in Sample) Sample {
	if bypass(f.Enabled) {
		return in
	}

	fc := f.CutOff.Effective()
	f.recompute(fc)

	ap := f.c*in + f.buf
	f.buf = in - f.c*ap

	switch f.Kind {
	case FirstOrderLowPass:
		return (in + ap) / 2
	case FirstOrderHighPass:
		return (in - ap) / 2
	default:
		return ap
	}
}

// SecondOrderKind selects which combination of the underlying all-pass
// section a SecondOrderFilter exposes.
type SecondOrderKind int

const (
	SecondOrderAllPass SecondOrderKind = iota
	SecondOrderBandPass
	SecondOrderBandStop
)

// SecondOrderFilter is a two-pole all-pass section with derived
// band-pass and band-stop outputs (spec.md §4.7).
type SecondOrderFilter struct {
	Kind       SecondOrderKind
	CutOff     *Parameter
	Q          *Parameter
	Enabled    *Parameter
	SampleRate float64

	d, c         float32
	oldCut, oldQ float32
	initial      bool
	b0, b1       float32
}

// NewSecondOrderFilter constructs a filter seeded so the first tick
// always computes its coefficients.
func NewSecondOrderFilter(kind SecondOrderKind, cutOff, q float32, sampleRate float64) *SecondOrderFilter {
	return &SecondOrderFilter{
		Kind:       kind,
		CutOff:     NewParameter(cutOff),
		Q:          NewParameter(q),
		Enabled:    NewParameter(1),
		SampleRate: sampleRate,
		oldCut:     cutOff - 1,
		oldQ:       q - 1,
	}
}

func (f *SecondOrderFilter) recompute(fc, q float32) {
	if f.initial && fc == f.oldCut && q == f.oldQ {
		return
	}
	f.d = float32(-math.Cos(2 * math.Pi * float64(fc) / f.SampleRate))
	t := math.Tan(math.Pi * float64(q))
	f.c = float32((t - 1) / (t + 1))
	f.oldCut, f.oldQ = fc, q
	f.initial = true
}

func (f *SecondOrderFilter) Tick(in Sample) Sample {
	if bypass(f.Enabled) {
		return in
	}

	f.recompute(f.CutOff.Effective(), f.Q.Effective())

	dc := f.d * (1 - f.c)
	v := in - dc*f.b0 + f.c*f.b1
	ap := -f.c*v + dc*f.b0 + f.b1
	f.b1 = f.b0
	f.b0 = v

	switch f.Kind {
	case SecondOrderBandPass:
		return (in - ap) / 2
	case SecondOrderBandStop:
		return (in + ap) / 2
	default:
		return ap
	}
}
