package spectral

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
	"strconv"
	"testing"

	dspfft "github.com/mjibson/go-dsp/fft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomSignal(n int, seed uint64) []float64 {
	r := rand.New(rand.NewPCG(seed, 0))
	x := make([]float64, n)
	for i := range x {
		x[i] = 2*r.Float64() - 1
	}
	return x
}

func TestRFFTMatchesReference(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 8, 12, 17, 64, 100, 441} {
		x := randomSignal(n, uint64(n))
		want := dspfft.FFTReal(x)
		got := RFFT(x)
		require.Len(t, got, n/2+1)
		for k := range got {
			assert.InDelta(t, 0, cmplx.Abs(got[k]-want[k]), 1e-9, "n=%d k=%d", n, k)
		}
	}
}

func TestRFFTImpulse(t *testing.T) {
	x := make([]float64, 7)
	x[0] = 1
	for _, c := range RFFT(x) {
		assert.InDelta(t, 1, real(c), 1e-12)
		assert.InDelta(t, 0, imag(c), 1e-12)
	}
}

func TestRFFTCosine(t *testing.T) {
	const n = 30
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Cos(2 * math.Pi * 3 * float64(i) / n)
	}
	X := RFFT(x)
	for k, c := range X {
		want := 0.0
		if k == 3 {
			want = n / 2
		}
		assert.InDelta(t, want, cmplx.Abs(c), 1e-9, "bin %d", k)
	}
}

func TestIRFFTRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 9, 10, 31, 32, 1000, 1001} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			x := randomSignal(n, 42)
			y := IRFFT(RFFT(x), n)
			require.Len(t, y, n)
			assert.InDeltaSlice(t, x, y, 1e-9)
		})
	}
}

func TestIRFFTLengthMismatch(t *testing.T) {
	assert.Panics(t, func() { IRFFT(make([]complex128, 3), 7) })
	assert.NotPanics(t, func() { IRFFT(make([]complex128, 4), 7) })
	assert.Nil(t, IRFFT(nil, 0))
}

func TestRFFTDoesNotModifyInput(t *testing.T) {
	x := randomSignal(16, 1)
	orig := append([]float64(nil), x...)
	RFFT(x)
	assert.Equal(t, orig, x)
}
