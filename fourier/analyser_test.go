package fourier

import (
	"math"
	"testing"
)

func TestFourierTransform_ZeroPadsShortInput(t *testing.T) {
	ft := NewFourierTransform(8, 8000, ZeroPadding)
	if err := ft.Process([]float64{1, 2, 3}); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(ft.buf) != 8 {
		t.Fatalf("buffer length = %d, want 8", len(ft.buf))
	}
	want := []float64{1, 2, 3, 0, 0, 0, 0, 0}
	for i, v := range want {
		if ft.buf[i] != v {
			t.Errorf("buf[%d] = %v, want %v", i, ft.buf[i], v)
		}
	}
}

func TestFourierTransform_TooLongIsRecoverable(t *testing.T) {
	ft := NewFourierTransform(4, 8000, ZeroPadding)
	err := ft.Process([]float64{1, 2, 3, 4, 5})
	if err != ErrBufferTooLong {
		t.Fatalf("Process with oversized input: got %v, want ErrBufferTooLong", err)
	}
}

func TestFourierTransform_HannWindowsPrefixOnly(t *testing.T) {
	ft := NewFourierTransform(4, 8000, Hann)
	if err := ft.Process([]float64{1, 1}); err != nil {
		t.Fatalf("Process: %v", err)
	}
	// n = 2: w(0) = sin(0)^2 = 0, w(1) = sin(pi/2)^2 = 1.
	if ft.buf[0] != 0 {
		t.Errorf("buf[0] = %v, want 0 (Hann taper at i=0)", ft.buf[0])
	}
	if math.Abs(ft.buf[1]-1) > 1e-9 {
		t.Errorf("buf[1] = %v, want ~1", ft.buf[1])
	}
	if ft.buf[2] != 0 || ft.buf[3] != 0 {
		t.Errorf("padded tail = [%v %v], want [0 0]", ft.buf[2], ft.buf[3])
	}
}

func TestFourierTransform_BinsMemoised(t *testing.T) {
	ft := NewFourierTransform(4, 8000, ZeroPadding)
	ft.Process([]float64{1, 2, 3, 4})
	a := ft.Bins()
	b := ft.Bins()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("bins changed between calls at %d: %v vs %v", i, a[i], b[i])
		}
	}

	ft.Process([]float64{4, 3, 2, 1})
	c := ft.Bins()
	if c[1] == a[1] {
		t.Fatalf("expected bins to be recomputed after Process invalidated the cache")
	}
}

// TestFourierTransform_ZeroSize mirrors the original implementation's
// fft_0_samples test: a zero-size analyser's Bins() must return an empty
// slice rather than recursing forever through the FFT's size==0 case.
func TestFourierTransform_ZeroSize(t *testing.T) {
	ft := NewFourierTransform(0, 44100, ZeroPadding)
	if err := ft.Process(nil); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if got := ft.Bins(); len(got) != 0 {
		t.Errorf("Bins() = %v, want empty", got)
	}
}

func TestFourierTransform_AnalyseSingleBin(t *testing.T) {
	const sr = 8000.0
	ft := NewFourierTransform(64, sr, ZeroPadding)

	samples := make([]float64, 64)
	freq := 500.0
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * freq * float64(i) / sr)
	}
	ft.Process(samples)

	power, _ := ft.Analyse(freq)
	powerOff, _ := ft.Analyse(freq * 3)
	if power <= powerOff {
		t.Errorf("power at the signal's own frequency (%v) should exceed an unrelated frequency (%v)", power, powerOff)
	}
}

