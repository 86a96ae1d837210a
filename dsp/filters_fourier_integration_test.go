package dsp_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/zaynotley/dspgraph/dsp"
	"github.com/zaynotley/dspgraph/fourier"
)

// TestFirstOrderLowPass_SpectralResponse reproduces spec.md §8 scenario
// 7: LowPass(fc=5kHz, fs=44.1kHz) on white noise leaves low frequencies
// untouched, halves the spectral power at cut-off, and fully attenuates
// content near Nyquist.
func TestFirstOrderLowPass_SpectralResponse(t *testing.T) {
	const (
		sampleRate = 44100.0
		cutoff     = 5000.0
		n          = 4096
	)

	rng := rand.New(rand.NewPCG(1, 2))
	dry := make([]float64, n)
	for i := range dry {
		dry[i] = rng.Float64()*2 - 1
	}

	filter := dsp.NewFirstOrderFilter(dsp.FirstOrderLowPass, cutoff, sampleRate)
	wet := make([]float64, n)
	for i, x := range dry {
		wet[i] = float64(filter.Tick(dsp.Sample(x)))
	}

	ftDry := fourier.NewFourierTransform(n, sampleRate, fourier.Hann)
	ftWet := fourier.NewFourierTransform(n, sampleRate, fourier.Hann)
	if err := ftDry.Process(dry); err != nil {
		t.Fatalf("Process dry: %v", err)
	}
	if err := ftWet.Process(wet); err != nil {
		t.Fatalf("Process wet: %v", err)
	}

	relativePower := func(freq float64) float64 {
		dryPower, _ := ftDry.Analyse(freq)
		wetPower, _ := ftWet.Analyse(freq)
		return wetPower / dryPower
	}

	// delta is the fraction of the signal power attenuated at a given
	// frequency: 0 means untouched, 1 means fully silenced.
	delta := func(freq float64) float64 { return 1 - relativePower(freq) }

	if got := delta(100); math.Abs(got) > 0.05 {
		t.Errorf("delta at 100Hz = %v, want ~0 (preserved)", got)
	}
	if got := delta(cutoff); math.Abs(got-0.5) > 0.05 {
		t.Errorf("delta at 5kHz cutoff = %v, want ~0.5 (halved)", got)
	}
	if got := delta(sampleRate / 2); math.Abs(got-1) > 0.15 {
		t.Errorf("delta at Nyquist = %v, want ~1 (fully attenuated)", got)
	}
}
