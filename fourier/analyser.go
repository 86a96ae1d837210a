package fourier

import (
	"errors"
	"math"
)

// WindowMode selects the tapering function FourierTransform applies to
// the non-padded prefix of its input buffer before analysis.
type WindowMode int

const (
	// ZeroPadding applies no taper; the input is only zero-padded to
	// the analyser's declared size.
	ZeroPadding WindowMode = iota
	// Hann applies a sin^2(pi*i/n) taper to reduce spectral leakage.
	Hann
)

// FourierTransform is a fixed-size windowed spectral analyser. It holds
// an internal buffer of exactly Size samples, lazily computes and
// memoises the normalised forward FFT of that buffer, and can evaluate
// a single frequency bin directly without computing the full transform.
type FourierTransform struct {
	Size       int
	SampleRate float64
	WindowMode WindowMode

	buf        []float64
	bins       []complex128
	binsCached bool
}

// NewFourierTransform constructs an analyser with a zeroed buffer of
// the given size.
func NewFourierTransform(size int, sampleRate float64, mode WindowMode) *FourierTransform {
	return &FourierTransform{
		Size:       size,
		SampleRate: sampleRate,
		WindowMode: mode,
		buf:        make([]float64, size),
	}
}

// Process copies samples into the internal buffer, zero-padding the
// tail to Size, applying the configured window to the non-padded
// prefix, and invalidating any cached bins. It returns ErrBufferTooLong
// if len(samples) exceeds Size.
func (ft *FourierTransform) Process(samples []float64) error {
	if len(samples) > ft.Size {
		return ErrBufferTooLong
	}

	n := len(samples)
	copy(ft.buf, samples)
	for i := n; i < ft.Size; i++ {
		ft.buf[i] = 0
	}

	if ft.WindowMode == Hann && n > 0 {
		for i := 0; i < n; i++ {
			w := math.Sin(math.Pi * float64(i) / float64(n))
			ft.buf[i] *= w * w
		}
	}

	ft.binsCached = false
	return nil
}

// Bins lazily computes and memoises the normalised forward FFT of the
// current buffer.
func (ft *FourierTransform) Bins() []complex128 {
	if !ft.binsCached {
		ft.bins = FFT(ft.buf)
		ft.binsCached = true
	}
	return ft.bins
}

// Inverse returns the real inverse transform of the current bins.
func (ft *FourierTransform) Inverse() []float64 {
	return IFFT(ft.Bins())
}

// Analyse evaluates the analyser's response at a single frequency f
// directly (a single-bin Goertzel-style evaluation, without computing
// the full transform), returning the power and phase in degrees.
func (ft *FourierTransform) Analyse(f float64) (power, phaseDegrees float64) {
	k := -2 * math.Pi * f / ft.SampleRate

	var sum complex128
	for i, v := range ft.buf {
		sum += complex(v, 0) * complexExp(k*float64(i))
	}
	sum /= complex(float64(ft.Size), 0)

	re, im := real(sum), imag(sum)
	power = re*re + im*im
	phaseDegrees = math.Atan2(im, re) * 180 / math.Pi
	return power, phaseDegrees
}

// ErrBufferTooLong is the recoverable error Process returns when its
// input is longer than the analyser's declared size (spec.md §7).
var ErrBufferTooLong = errors.New("fourier: input longer than analyser size")

func complexExp(theta float64) complex128 {
	return complex(math.Cos(theta), math.Sin(theta))
}
