package dsp

import (
	"math"
	"testing"
)

func TestOscillator_SquareWaveformBounds(t *testing.T) {
	osc := NewOscillator(Square, NewParameter(1000), NewParameter(1), 44100)
	for i := 0; i < 100; i++ {
		s, ok := osc.Tick(1)
		if !ok {
			t.Fatalf("tick %d: expected a sample", i)
		}
		if s != 1 && s != -1 {
			t.Fatalf("tick %d: square wave sample = %v, want +-1", i, s)
		}
	}
}

func TestOscillator_SineStaysInRange(t *testing.T) {
	osc := NewOscillator(Sine, NewParameter(440), NewParameter(0.5), 44100)
	for i := 0; i < 1000; i++ {
		s, _ := osc.Tick(1)
		if math.Abs(float64(s)) > 0.5+1e-6 {
			t.Fatalf("tick %d: sine sample %v exceeds amplitude 0.5", i, s)
		}
	}
}

func TestOscillator_ZeroFrequencyIsSilent(t *testing.T) {
	osc := NewOscillator(Sine, NewParameter(0), NewParameter(1), 44100)
	s, ok := osc.Tick(1)
	if !ok || s != 0 {
		t.Errorf("zero-frequency oscillator = (%v, %v), want (0, true)", s, ok)
	}
}

func TestOscillator_SharedOutputAcrossFanOut(t *testing.T) {
	osc := NewOscillator(Sine, NewParameter(1000), NewParameter(1), 44100)
	const k = 4

	first, _ := osc.Tick(k)
	for i := 1; i < k; i++ {
		s, _ := osc.Tick(k)
		if s != first {
			t.Fatalf("call %d within fan-out group: got %v, want cached %v", i, s, first)
		}
	}

	next, _ := osc.Tick(k)
	if next == first {
		t.Fatalf("expected a fresh sample after a full fan-out group, got repeated %v", first)
	}
}

func TestAmplitudeModulation(t *testing.T) {
	amp := NewParameter(0.5)
	lfo := NewOscillator(Sine, NewParameter(1), NewParameter(0.1), 44100)
	amp.AddModulator(lfo, 1)

	if got := amp.Effective(); math.Abs(float64(got-0.5)) > 0.2 {
		t.Errorf("modulated amplitude out of expected range: %v", got)
	}
}
