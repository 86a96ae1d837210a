package dsp

// modulatorRef pairs a modulator generator with the fan-out count it
// should be ticked with — the number of parents currently sharing that
// modulator, computed explicitly at wiring time rather than inferred
// from a runtime reference count (see DESIGN.md, "fan-out made
// explicit").
type modulatorRef struct {
	gen    Generator
	fanOut int
}

// Parameter is a mutable baseline value plus an ordered list of
// modulator generators. Frequency, amplitude, cut-off, Q, factor,
// enabled-flag and slide times are Parameters. The ADSR's curve
// exponents, stage durations and levels are plain fields and cannot be
// modulated.
type Parameter struct {
	Value      float32
	modulators []modulatorRef
}

// NewParameter returns a Parameter with the given baseline and no
// modulators attached.
func NewParameter(value float32) *Parameter {
	return &Parameter{Value: value}
}

// AddModulator attaches a modulator generator to this parameter. fanOut
// is the number of parents that will reference this same modulator
// instance (1 if it is exclusive to this parameter). Mutating a
// parameter's modulator list must not interleave with a pull of the
// graph it belongs to (§5).
func (p *Parameter) AddModulator(gen Generator, fanOut int) {
	if fanOut <= 0 {
		fanOut = 1
	}
	p.modulators = append(p.modulators, modulatorRef{gen: gen, fanOut: fanOut})
}

// Effective sums the baseline value and every modulator's current tick
// output, treating an absent modulator output as 0. It is read exactly
// once per consuming tick and never cached across calls.
func (p *Parameter) Effective() float32 {
	v := p.Value
	for _, m := range p.modulators {
		if s, ok := m.gen.Tick(m.fanOut); ok {
			v += s
		}
	}
	return v
}
