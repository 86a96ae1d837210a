package dsp

import "math"

// EnvelopeStage is a state in the ADSR state machine.
type EnvelopeStage int

const (
	StageOff EnvelopeStage = iota
	StageAttack
	StageDecay
	StageSustain
	StageRelease
)

// ADSR is an attack-decay-sustain-release envelope generator. Transitions
// into Attack and Release are client-driven via Trigger and Release;
// transitions out of Attack, Decay and Release are time-driven. This
// resolves the envelope-start-semantics open question (§9) in favour of
// an explicit API rather than direct state mutation.
type ADSR struct {
	AttackMS, DecayMS, ReleaseMS          float64
	AttackCurve, DecayCurve, ReleaseCurve float64
	Peak, Sustain                         float32
	SampleRate                            float64

	stage EnvelopeStage
	step  int
	hold  FanOutHold
}

// NewADSR constructs an envelope in the Off state.
func NewADSR(attackMS, attackCurve float64, peak float32, decayMS, decayCurve float64, sustain float32, releaseMS, releaseCurve float64, sampleRate float64) *ADSR {
	return &ADSR{
		AttackMS: attackMS, AttackCurve: attackCurve,
		DecayMS: decayMS, DecayCurve: decayCurve,
		ReleaseMS: releaseMS, ReleaseCurve: releaseCurve,
		Peak: peak, Sustain: sustain,
		SampleRate: sampleRate,
		stage:      StageOff,
	}
}

// Trigger starts (or restarts) the envelope from Attack(0).
func (e *ADSR) Trigger() {
	e.stage = StageAttack
	e.step = 0
}

// Release moves the envelope into Release(0). The release ramp always
// anchors on Sustain regardless of the stage Release was called from;
// a release triggered mid-Decay jumps to that anchor before ramping
// down from it, matching the envelope's defined Release formula.
func (e *ADSR) Release() {
	e.stage = StageRelease
	e.step = 0
}

// samples converts a millisecond duration to a sample count at the
// envelope's sample rate.
func (e *ADSR) samples(ms float64) int {
	return int(math.Round(ms / 1000 * e.SampleRate))
}

func (e *ADSR) currentLevel() float32 {
	switch e.stage {
	case StageAttack:
		na := e.samples(e.AttackMS)
		if na <= 0 {
			return e.Peak
		}
		return e.Peak * Sample(math.Pow(float64(e.step)/float64(na), e.AttackCurve))
	case StageDecay:
		nd := e.samples(e.DecayMS)
		if nd <= 0 {
			return e.Sustain
		}
		return e.Peak - (e.Peak-e.Sustain)*Sample(math.Pow(float64(e.step)/float64(nd), e.DecayCurve))
	case StageSustain:
		return e.Sustain
	case StageRelease:
		nr := e.samples(e.ReleaseMS)
		if nr <= 0 {
			return 0
		}
		return e.Sustain - e.Sustain*Sample(math.Pow(float64(e.step)/float64(nr), e.ReleaseCurve))
	default:
		return 0
	}
}

func (e *ADSR) Tick(fanOut int) (Sample, bool) {
	if e.hold.Advance(fanOut) {
		return e.hold.Cached(), true
	}

	out := e.currentLevel()

	switch e.stage {
	case StageAttack:
		na := e.samples(e.AttackMS)
		e.step++
		if e.step >= na {
			e.stage = StageDecay
			e.step = 0
		}
	case StageDecay:
		nd := e.samples(e.DecayMS)
		e.step++
		if e.step >= nd {
			e.stage = StageSustain
			e.step = 0
		}
	case StageRelease:
		nr := e.samples(e.ReleaseMS)
		e.step++
		if e.step >= nr {
			e.stage = StageOff
			e.step = 0
		}
	}

	return e.hold.Cache(out), true
}

// Stage reports the envelope's current state, mainly useful for tests.
func (e *ADSR) Stage() EnvelopeStage { return e.stage }
