// Package dsp implements the per-sample signal graph: generators, effects
// and the composite containers that wire them together. Every node is
// pulled synchronously, once per output sample, from the graph root.
//
// The WAV file writer and the live playback sink that consume this
// graph's output are external collaborators (see
// github.com/zaynotley/dspgraph/wavsink and
// github.com/zaynotley/dspgraph/livesink) and never appear in this
// package; their only contact with the core is the Generator contract
// below. A live audio-capture driver is likewise external and has no
// implementation in this module.
package dsp

// Sample is a single audio value, nominally in [-1, 1] but never clamped.
type Sample = float32

// StereoSample is an ordered (left, right) pair produced by stereo
// collaborators upstream of the core (e.g. the audio-capture driver).
type StereoSample struct {
	Left, Right Sample
}

// Generator produces the next sample in a pull-based graph, or signals
// "disabled, no contribution" by returning ok == false. fanOut is the
// number of distinct parents currently holding a shared reference to
// this generator; implementations that hold internal timing state MUST
// honour the shared-output invariant (see FanOutHold).
type Generator interface {
	Tick(fanOut int) (out Sample, ok bool)
}

// Effect transforms an input sample into an output sample. Effects never
// reject their input and never signal absence.
type Effect interface {
	Tick(in Sample) Sample
}

// GeneratorFunc adapts a plain function to the Generator interface for
// generators with no shared-output bookkeeping of their own (e.g. a
// constant source used only in tests).
type GeneratorFunc func(fanOut int) (Sample, bool)

func (f GeneratorFunc) Tick(fanOut int) (Sample, bool) { return f(fanOut) }

// EffectFunc adapts a plain function to the Effect interface.
type EffectFunc func(in Sample) Sample

func (f EffectFunc) Tick(in Sample) Sample { return f(in) }

// FanOutHold implements the shared-output invariant common to every
// stateful generator in this package: a generator shared by k parents
// must advance its internal clock only every k calls, so every consumer
// observing the same logical timestep sees the same value.
//
// Embed it in a generator's state and call Advance at the top of Tick:
// if Advance reports hold == true, return the cached sample unchanged
// without computing a new one.
type FanOutHold struct {
	index  int
	cached Sample
	valid  bool
}

// Advance moves the internal counter for the given fan-out and reports
// whether the caller should return the cached sample instead of
// computing a fresh one. fanOut <= 0 is treated as 1 (no fan-out
// sharing, compute every call).
func (h *FanOutHold) Advance(fanOut int) (hold bool) {
	if fanOut <= 0 {
		fanOut = 1
	}
	hold = h.index != 0 && h.valid
	h.index = (h.index + 1) % fanOut
	return hold
}

// Cache records the freshly computed sample for later fan-out calls.
func (h *FanOutHold) Cache(s Sample) Sample {
	h.cached = s
	h.valid = true
	return s
}

// Cached returns the last cached sample; only meaningful after Advance
// has reported hold == true.
func (h *FanOutHold) Cached() Sample { return h.cached }
