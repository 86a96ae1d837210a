package dsp

import "math/rand/v2"

// NoiseKind selects the noise generation algorithm. White is the only
// kind the core ships (spec.md §4.3); the type exists so additional
// shaped-noise kinds can be added without changing the constructor
// signature.
type NoiseKind int

const (
	White NoiseKind = iota
)

// Noise is a source generator emitting uniformly distributed samples in
// [-amplitude, +amplitude]. The PRNG is seeded per-instance so tests can
// reproduce a run exactly given the same seed (§9, PRNG determinism).
type Noise struct {
	Kind      NoiseKind
	Amplitude *Parameter

	rng  *rand.Rand
	hold FanOutHold
}

// NewNoise constructs a Noise generator seeded deterministically from
// seed. Two Noise generators built with the same seed produce identical
// output sequences.
func NewNoise(kind NoiseKind, amplitude *Parameter, seed uint64) *Noise {
	return &Noise{
		Kind:      kind,
		Amplitude: amplitude,
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (n *Noise) Tick(fanOut int) (Sample, bool) {
	if n.hold.Advance(fanOut) {
		return n.hold.Cached(), true
	}

	a := n.Amplitude.Effective()
	if a == 0 {
		return n.hold.Cache(0), true
	}

	u := n.rng.Float64()*2 - 1 // uniform in [-1, 1)
	return n.hold.Cache(Sample(u) * a), true
}
