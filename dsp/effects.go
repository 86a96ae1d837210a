package dsp

import "math"

// bypass reports whether an effect's Enabled parameter is currently at
// zero, in which case the effect must emit its input unchanged.
func bypass(enabled *Parameter) bool {
	return enabled.Effective() == 0
}

// Absolute emits the absolute value of its input.
type Absolute struct {
	Enabled *Parameter
}

func NewAbsolute() *Absolute { return &Absolute{Enabled: NewParameter(1)} }

func (a *Absolute) Tick(in Sample) Sample {
	if bypass(a.Enabled) {
		return in
	}
	return Sample(math.Abs(float64(in)))
}

// Operator applies a caller-supplied pure function to its input, e.g.
// clipping or thresholding. Fn must be side-effect free; it is called
// once per tick.
type Operator struct {
	Fn      func(Sample) Sample
	Enabled *Parameter
}

func NewOperator(fn func(Sample) Sample) *Operator {
	return &Operator{Fn: fn, Enabled: NewParameter(1)}
}

func (o *Operator) Tick(in Sample) Sample {
	if bypass(o.Enabled) {
		return in
	}
	return o.Fn(in)
}

// Amplifier scales its input by a modulatable factor.
type Amplifier struct {
	Scalar  *Parameter
	Enabled *Parameter
}

func NewAmplifier(scalar float32) *Amplifier {
	return &Amplifier{Scalar: NewParameter(scalar), Enabled: NewParameter(1)}
}

func (a *Amplifier) Tick(in Sample) Sample {
	if bypass(a.Enabled) {
		return in
	}
	return in * Sample(a.Scalar.Effective())
}

// DownSample holds and re-emits an input sample every factor ticks.
type DownSample struct {
	Factor  *Parameter
	Enabled *Parameter

	step int
	hold Sample
}

func NewDownSample(factor float32) *DownSample {
	return &DownSample{Factor: NewParameter(factor), Enabled: NewParameter(1)}
}

func (d *DownSample) Tick(in Sample) Sample {
	if bypass(d.Enabled) {
		return in
	}

	factor := int(d.Factor.Effective())
	if factor <= 0 {
		factor = 1
	}

	if d.step%factor == 0 {
		d.hold = in
		d.step = 0
	}
	out := d.hold
	d.step++
	return out
}

// Slide is a first-order lag filter with independent rise/fall time
// constants.
type Slide struct {
	Up, Down *Parameter
	Enabled  *Parameter

	buf Sample
}

func NewSlide(up, down float32) *Slide {
	return &Slide{Up: NewParameter(up), Down: NewParameter(down), Enabled: NewParameter(1)}
}

func (s *Slide) Tick(in Sample) Sample {
	if bypass(s.Enabled) {
		return in
	}

	delta := in - s.buf
	var rate float32
	if delta > 0 {
		rate = s.Up.Effective()
	} else {
		rate = s.Down.Effective()
	}
	if rate == 0 {
		rate = 1
	}
	s.buf += delta / rate
	return s.buf
}

// MovingAverage emits the mean of the window most-recent input samples.
// Before window inputs have been processed, it averages over only the
// samples seen so far.
type MovingAverage struct {
	Enabled *Parameter

	buf       []Sample
	window    int
	index     int
	processed int
}

func NewMovingAverage(window int) *MovingAverage {
	if window <= 0 {
		window = 1
	}
	return &MovingAverage{
		Enabled: NewParameter(1),
		buf:     make([]Sample, window),
		window:  window,
	}
}

func (m *MovingAverage) Tick(in Sample) Sample {
	if bypass(m.Enabled) {
		return in
	}

	m.buf[m.index] = in
	m.index = (m.index + 1) % m.window
	if m.processed < m.window {
		m.processed++
	}

	var sum Sample
	for i := 0; i < m.processed; i++ {
		sum += m.buf[i]
	}
	return sum / Sample(m.processed)
}

// SetWindowSize resizes the averaging window, preserving as many
// trailing input values as fit in the new size. The processed counter
// is truncated to match.
func (m *MovingAverage) SetWindowSize(window int) {
	if window <= 0 {
		window = 1
	}

	keep := m.processed
	if keep > window {
		keep = window
	}
	if keep > m.window {
		keep = m.window
	}

	newBuf := make([]Sample, window)
	// Copy the keep most-recent values, oldest first, into the front
	// of the new buffer.
	for i := 0; i < keep; i++ {
		srcIdx := (m.index - keep + i + m.window) % m.window
		newBuf[i] = m.buf[srcIdx]
	}

	m.buf = newBuf
	m.window = window
	m.processed = keep
	m.index = keep % window
}
