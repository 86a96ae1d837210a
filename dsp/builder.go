package dsp

// Builder is a construction facade parameterised by a shared sample
// rate. It returns freshly allocated nodes; wiring them into a graph
// (attaching modulators, building chains and parallel mixers) is the
// caller's responsibility. There is no registry of previously built
// nodes — the Builder only fixes the sample rate every factory needs.
type Builder struct {
	SampleRate float64
}

// NewBuilder returns a Builder for the given sample rate.
func NewBuilder(sampleRate float64) *Builder {
	return &Builder{SampleRate: sampleRate}
}

func (b *Builder) Oscillator(kind OscillatorKind, frequency, amplitude float32) *Oscillator {
	return NewOscillator(kind, NewParameter(frequency), NewParameter(amplitude), b.SampleRate)
}

func (b *Builder) Noise(kind NoiseKind, amplitude float32, seed uint64) *Noise {
	return NewNoise(kind, NewParameter(amplitude), seed)
}

func (b *Builder) ADSR(attackMS, attackCurve float64, peak float32, decayMS, decayCurve float64, sustain float32, releaseMS, releaseCurve float64) *ADSR {
	return NewADSR(attackMS, attackCurve, peak, decayMS, decayCurve, sustain, releaseMS, releaseCurve, b.SampleRate)
}

func (b *Builder) DownSample(factor float32) *DownSample { return NewDownSample(factor) }

func (b *Builder) FirstOrderFilter(kind FirstOrderKind, cutOff float32) *FirstOrderFilter {
	return NewFirstOrderFilter(kind, cutOff, b.SampleRate)
}

func (b *Builder) SecondOrderFilter(kind SecondOrderKind, cutOff, q float32) *SecondOrderFilter {
	return NewSecondOrderFilter(kind, cutOff, q, b.SampleRate)
}

func (b *Builder) MovingAverage(window int) *MovingAverage { return NewMovingAverage(window) }

func (b *Builder) Absolute() *Absolute { return NewAbsolute() }

func (b *Builder) Amplifier(a float32) *Amplifier { return NewAmplifier(a) }

func (b *Builder) Operator(fn func(Sample) Sample) *Operator { return NewOperator(fn) }

func (b *Builder) Slide(up, down float32) *Slide { return NewSlide(up, down) }

func (b *Builder) FxChain(inner Generator) *FxChain { return NewFxChain(inner) }

func (b *Builder) Chain(effects ...Effect) *Chain { return NewChain(effects...) }

func (b *Builder) Parallel(normalise bool) *Parallel { return NewParallel(normalise) }
