// Package fourier implements the radix-2 Cooley-Tukey FFT and a
// windowed spectral analyser used both to extract spectral information
// from a signal and to verify filter behaviour.
package fourier

import (
	"fmt"
	"math"
	"math/cmplx"
)

// ErrNotPowerOfTwo is the domain error raised when FFT/IFFT is asked to
// transform a buffer whose length is not zero or a power of two. This
// is treated as a programming error (spec.md §7), so the FFT entry
// points panic with it rather than returning it.
type ErrNotPowerOfTwo struct {
	Len int
}

func (e ErrNotPowerOfTwo) Error() string {
	return fmt.Sprintf("fourier: input length %d is not a power of two", e.Len)
}

func isPowerOfTwo(n int) bool {
	return n == 0 || n&(n-1) == 0
}

// FFT computes the forward, normalised (1/N) discrete Fourier transform
// of real-valued samples x. len(x) must be 0 or a power of two.
func FFT(x []float64) []complex128 {
	return transform(x, false)
}

// IFFT computes the inverse transform of complex bins, returning the
// real part of the reconstructed time-domain samples. len(bins) must be
// 0 or a power of two.
func IFFT(bins []complex128) []float64 {
	cx := make([]complex128, len(bins))
	copy(cx, bins)
	out := fftRecurse(cx, true)
	re := make([]float64, len(out))
	for i, c := range out {
		re[i] = real(c)
	}
	return re
}

func transform(x []float64, inverse bool) []complex128 {
	cx := make([]complex128, len(x))
	for i, v := range x {
		cx[i] = complex(v, 0)
	}
	return fftRecurse(cx, inverse)
}

// fftRecurse is the recursive decomposition described in spec.md §4.8:
// a decimation-in-time split into even- and odd-indexed samples. It panics with ErrNotPowerOfTwo if len(x)
// is not 0 or a power of two.
func fftRecurse(x []complex128, inverse bool) []complex128 {
	n := len(x)
	if !isPowerOfTwo(n) {
		panic(ErrNotPowerOfTwo{Len: n})
	}
	if n == 0 {
		return nil
	}
	return fftStep(x, n, 1, 0, inverse)
}

func fftStep(x []complex128, size, step, start int, inverse bool) []complex128 {
	if size == 1 {
		return []complex128{x[start]}
	}

	h := size / 2
	sign := -1.0
	if inverse {
		sign = 1.0
	}
	k := sign * 2 * math.Pi / float64(size)

	g := fftStep(x, h, 2*step, start, inverse)
	hOut := fftStep(x, h, 2*step, start+step, inverse)

	r := make([]complex128, size)
	for i := 0; i < size; i++ {
		tw := cmplx.Exp(complex(0, k*float64(i)))
		r[i] = g[i%h] + tw*hOut[i%h]
	}

	if !inverse && step == 1 && size == len(x) {
		for i := range r {
			r[i] /= complex(float64(size), 0)
		}
	}
	return r
}
