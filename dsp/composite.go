package dsp

// Chain runs a sequence of effects over an input sample, left-to-right.
type Chain struct {
	effects []Effect
}

// NewChain constructs a Chain from an ordered list of effects.
func NewChain(effects ...Effect) *Chain {
	return &Chain{effects: append([]Effect(nil), effects...)}
}

// Append adds an effect to the end of the chain.
func (c *Chain) Append(e Effect) { c.effects = append(c.effects, e) }

// Prepend adds an effect to the front of the chain.
func (c *Chain) Prepend(e Effect) {
	c.effects = append([]Effect{e}, c.effects...)
}

func (c *Chain) Tick(in Sample) Sample {
	out := in
	for _, e := range c.effects {
		out = e.Tick(out)
	}
	return out
}

// parallelMember pairs a generator with the fan-out it should be ticked
// with (see DESIGN.md, "fan-out made explicit").
type parallelMember struct {
	gen    Generator
	fanOut int
}

// Parallel sums the outputs of a collection of generators. An absent
// generator output is skipped, not counted as zero, in the enabled
// count used for optional normalisation.
//
// The original source contains a dead `sum != n_enabled` statement
// whose author apparently intended `sum /= n_enabled` (average); rather
// than guess, that behaviour is surfaced explicitly as the Normalise
// flag. false (the default) reproduces the observed, un-normalised
// summing behaviour.
type Parallel struct {
	Normalise bool

	members []parallelMember
}

// NewParallel constructs an empty Parallel mixer.
func NewParallel(normalise bool) *Parallel {
	return &Parallel{Normalise: normalise}
}

// Add attaches a generator to the mixer with the given fan-out.
func (p *Parallel) Add(gen Generator, fanOut int) {
	if fanOut <= 0 {
		fanOut = 1
	}
	p.members = append(p.members, parallelMember{gen: gen, fanOut: fanOut})
}

func (p *Parallel) Tick(fanOut int) (Sample, bool) {
	var sum Sample
	var nEnabled int
	for _, m := range p.members {
		if s, ok := m.gen.Tick(m.fanOut); ok {
			sum += s
			nEnabled++
		}
	}
	if nEnabled == 0 {
		return 0, false
	}
	if p.Normalise && nEnabled > 1 {
		sum /= Sample(nEnabled)
	}
	return sum, true
}

// FxChain wraps a single generator and an effect chain: it pulls the
// generator, feeds the result through the chain, and returns the
// result. It is itself a generator and honours the shared-output
// invariant.
type FxChain struct {
	Source Generator
	Chain  *Chain

	hold FanOutHold
}

// NewFxChain wraps source with an (initially empty) effect chain.
func NewFxChain(source Generator) *FxChain {
	return &FxChain{Source: source, Chain: NewChain()}
}

func (f *FxChain) Tick(fanOut int) (Sample, bool) {
	if f.hold.Advance(fanOut) {
		return f.hold.Cached(), true
	}

	s, ok := f.Source.Tick(1)
	if !ok {
		return 0, false
	}
	return f.hold.Cache(f.Chain.Tick(s)), true
}

// StereoMono downmixes a (left, right) pair to mono (0.5L + 0.5R) and
// feeds the result through a child mono processor.
type StereoMono struct {
	Child Effect
}

// NewStereoMono wraps a mono child effect behind a stereo-to-mono
// downmix.
func NewStereoMono(child Effect) *StereoMono {
	return &StereoMono{Child: child}
}

func (s *StereoMono) Tick(in StereoSample) Sample {
	mono := 0.5*in.Left + 0.5*in.Right
	return s.Child.Tick(mono)
}
