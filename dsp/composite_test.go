package dsp

import "testing"

func constGen(v Sample, enabled bool) Generator {
	return GeneratorFunc(func(fanOut int) (Sample, bool) { return v, enabled })
}

func TestParallel_UnnormalisedSumsEnabledOnly(t *testing.T) {
	p := NewParallel(false)
	p.Add(constGen(2, true), 1)
	p.Add(constGen(3, true), 1)
	p.Add(constGen(100, false), 1) // disabled: skipped, not counted as 0

	out, ok := p.Tick(1)
	if !ok {
		t.Fatal("expected at least one enabled generator")
	}
	if out != 5 {
		t.Errorf("Parallel sum = %v, want 5", out)
	}
}

func TestParallel_NormaliseDividesByEnabledCount(t *testing.T) {
	p := NewParallel(true)
	p.Add(constGen(2, true), 1)
	p.Add(constGen(4, true), 1)
	p.Add(constGen(100, false), 1)

	out, ok := p.Tick(1)
	if !ok {
		t.Fatal("expected at least one enabled generator")
	}
	if out != 3 {
		t.Errorf("Parallel normalised average = %v, want 3", out)
	}
}

func TestParallel_NormaliseSkipsDivisionForSingleEnabled(t *testing.T) {
	p := NewParallel(true)
	p.Add(constGen(7, true), 1)

	out, _ := p.Tick(1)
	if out != 7 {
		t.Errorf("single-member normalised Parallel = %v, want 7 unchanged", out)
	}
}

func TestParallel_AllDisabledIsAbsent(t *testing.T) {
	p := NewParallel(false)
	p.Add(constGen(5, false), 1)

	if _, ok := p.Tick(1); ok {
		t.Error("expected absent output when every member is disabled")
	}
}

func TestFxChain_PullsSourceThroughChain(t *testing.T) {
	src := constGen(4, true)
	fx := NewFxChain(src)
	fx.Chain.Append(EffectFunc(func(x Sample) Sample { return x * 2 }))

	out, ok := fx.Tick(1)
	if !ok || out != 8 {
		t.Errorf("FxChain.Tick = (%v, %v), want (8, true)", out, ok)
	}
}

func TestFxChain_AbsentSourceIsAbsent(t *testing.T) {
	fx := NewFxChain(constGen(0, false))
	if _, ok := fx.Tick(1); ok {
		t.Error("expected absent output when source is absent")
	}
}

func TestStereoMono_Downmix(t *testing.T) {
	sm := NewStereoMono(EffectFunc(func(x Sample) Sample { return x }))
	out := sm.Tick(StereoSample{Left: 1, Right: -1})
	if out != 0 {
		t.Errorf("downmix of (1, -1) = %v, want 0", out)
	}

	out = sm.Tick(StereoSample{Left: 1, Right: 0.5})
	if out != 0.75 {
		t.Errorf("downmix of (1, 0.5) = %v, want 0.75", out)
	}
}
