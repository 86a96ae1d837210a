package dsp

import "math"

// OscillatorKind selects the waveform an Oscillator produces.
type OscillatorKind int

const (
	Sine OscillatorKind = iota
	Triangle
	Square
	Saw
)

// Oscillator is a source generator producing a periodic waveform at a
// modulatable frequency and amplitude. The samples-per-cycle count N is
// recomputed from the effective frequency on every active tick, and the
// phase accumulator wraps at N.
type Oscillator struct {
	Kind       OscillatorKind
	Frequency  *Parameter
	Amplitude  *Parameter
	SampleRate float64

	phaseStep int
	hold      FanOutHold
}

// NewOscillator constructs an Oscillator with the given waveform kind,
// frequency and amplitude parameters, at the given sample rate.
func NewOscillator(kind OscillatorKind, frequency, amplitude *Parameter, sampleRate float64) *Oscillator {
	return &Oscillator{Kind: kind, Frequency: frequency, Amplitude: amplitude, SampleRate: sampleRate}
}

func (o *Oscillator) Tick(fanOut int) (Sample, bool) {
	if o.hold.Advance(fanOut) {
		return o.hold.Cached(), true
	}

	f := o.Frequency.Effective()
	a := o.Amplitude.Effective()
	if f <= 0 {
		return o.hold.Cache(0), true
	}

	n := int(math.Floor(o.SampleRate / float64(f)))
	if n <= 0 {
		n = 1
	}

	var raw float64
	switch o.Kind {
	case Sine:
		raw = math.Sin(2 * math.Pi * float64(o.phaseStep) * float64(f) / o.SampleRate)
	case Square:
		if o.phaseStep < n/2 {
			raw = 1
		} else {
			raw = -1
		}
	case Saw:
		raw = 2*float64(o.phaseStep)/float64(n) - 1
	case Triangle:
		half := float64(n) / 2
		if float64(o.phaseStep) < half {
			raw = 2*(float64(o.phaseStep)/half) - 1
		} else {
			raw = 1 - 2*((float64(o.phaseStep)-half)/half)
		}
	}

	o.phaseStep++
	if o.phaseStep >= n {
		o.phaseStep = 0
	}

	return o.hold.Cache(Sample(raw) * Sample(a)), true
}
