// Package spectral implements real-signal Fourier transforms of any length,
// density curves over their frequency bins and spectral shaping of noise.
package spectral

import (
	"math"
	"math/bits"
	"math/cmplx"
	"sync"

	"github.com/ktye/fft"
)

func plan(n int) fft.FFT {
	p, err := fft.New(n)
	if err != nil {
		panic(err)
	}
	return p
}

var (
	signOnce sync.Once
	negative bool
)

// planSign reports whether ktye's forward transform uses the e^(-2πi·jk/n)
// kernel.
func planSign() bool {
	signOnce.Do(func() {
		y := plan(4).Transform([]complex128{0, 1, 0, 0})
		negative = imag(y[1]) < 0
	})
	return negative
}

func isPow2(n int) bool { return n > 0 && n&(n-1) == 0 }

// transform computes Σ x[j]·e^(∓2πi·jk/n) for power-of-two n, with the minus
// sign if inverse is false.  x is not modified.  The inverse is not scaled.
func transform(x []complex128, inverse bool) []complex128 {
	y := append([]complex128(nil), x...)
	if len(y) < 2 {
		return y
	}
	flip := planSign() == inverse
	if flip {
		conj(y)
	}
	y = plan(len(y)).Transform(y)
	if flip {
		conj(y)
	}
	return y
}

func conj(x []complex128) {
	for i, c := range x {
		x[i] = cmplx.Conj(c)
	}
}

// dft computes the unscaled discrete Fourier transform of x for any length,
// going through Bluestein's algorithm when len(x) is not a power of two.
func dft(x []complex128, inverse bool) []complex128 {
	n := len(x)
	if n < 2 || isPow2(n) {
		return transform(x, inverse)
	}

	sign := -1.0
	if inverse {
		sign = 1
	}
	chirp := make([]complex128, n)
	for k := range chirp {
		// k² mod 2n keeps the angle small for large k.
		a := math.Pi * float64((k*k)%(2*n)) / float64(n)
		chirp[k] = cmplx.Rect(1, sign*a)
	}

	m := 1 << bits.Len(uint(2*n-2))
	a := make([]complex128, m)
	b := make([]complex128, m)
	for k := range chirp {
		a[k] = x[k] * chirp[k]
		b[k] = cmplx.Conj(chirp[k])
		if k > 0 {
			b[m-k] = b[k]
		}
	}

	a = transform(a, false)
	b = transform(b, false)
	for i := range a {
		a[i] *= b[i]
	}
	a = transform(a, true)

	y := make([]complex128, n)
	for k := range y {
		y[k] = a[k] * chirp[k] / complex(float64(m), 0)
	}
	return y
}

// RFFT returns the non-redundant half spectrum of the real signal x: bins 0
// through len(x)/2 of its discrete Fourier transform.
func RFFT(x []float64) []complex128 {
	if len(x) == 0 {
		return nil
	}
	c := make([]complex128, len(x))
	for i, v := range x {
		c[i] = complex(v, 0)
	}
	return dft(c, false)[:len(x)/2+1]
}

// IRFFT inverts RFFT, reconstructing the n-sample real signal whose half
// spectrum is X.  It panics unless len(X) == n/2+1.
func IRFFT(X []complex128, n int) []float64 {
	if n == 0 {
		return nil
	}
	if len(X) != n/2+1 {
		panic("spectral: IRFFT half spectrum length does not match n")
	}
	full := make([]complex128, n)
	copy(full, X)
	for k := 1; k <= (n-1)/2; k++ {
		full[n-k] = cmplx.Conj(X[k])
	}
	y := dft(full, true)
	x := make([]float64, n)
	for i := range x {
		x[i] = real(y[i]) / float64(n)
	}
	return x
}
