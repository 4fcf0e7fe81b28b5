package wave

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlideAt(t *testing.T) {
	g := NewGlide(ControlPoint{0, 100}, ControlPoint{1, 200}, ControlPoint{1, 50}, ControlPoint{2, 50})
	for _, tc := range []struct{ t, f float64 }{
		{-1, 100},
		{0, 100},
		{.5, 150},
		{1, 200},
		{1.5, 50},
		{3, 50},
	} {
		f, ok := g.At(tc.t)
		require.True(t, ok)
		assert.InDelta(t, tc.f, f, 1e-9, "at %g", tc.t)
	}

	_, ok := NewGlide().At(0)
	assert.False(t, ok)

	unordered := NewGlide(ControlPoint{1, 200}, ControlPoint{0, 100})
	f, _ := unordered.At(.25)
	assert.InDelta(t, 125, f, 1e-9)
}

func TestGlideConstantMatchesPlainSine(t *testing.T) {
	plain, err := NewSine().Frequency(300).DurationMs(20).Finalize()
	require.NoError(t, err)
	glided, err := NewSine().Frequency(300).DurationMs(20).Updater(NewGlide(ControlPoint{0, 300})).Finalize()
	require.NoError(t, err)
	assert.Equal(t, drain(t, plain), drain(t, glided))
}

func TestGlideIsContinuous(t *testing.T) {
	const rate = 44100
	w, err := NewSine().Frequency(200).DurationMs(500).
		Updater(NewGlide(ControlPoint{0, 200}, ControlPoint{.5, 2000})).
		Finalize()
	require.NoError(t, err)
	s := drain(t, w)
	require.Len(t, s, rate/2)

	// A unit sine at frequency f moves at most 2πf/rate per sample.
	step := 2 * math.Pi * 2000 / rate
	for i := 1; i < len(s); i++ {
		assert.LessOrEqual(t, math.Abs(s[i]-s[i-1]), step*1.01, "at %d", i)
	}
	assert.InDelta(t, 2000, w.Params().Frequency, 5)
	assert.NotEqual(t, 200.0, w.Tone().Frequency())
}

func TestUpdaterFunc(t *testing.T) {
	var seen []int
	fade := UpdaterFunc(func(p Params, index int) Params {
		seen = append(seen, index)
		p.Amplitude /= 2
		return p
	})
	w, err := NewPulse().Frequency(1).SampleRate(1000).DurationMs(4).Updater(fade).Finalize()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, .5, .25, .125}, drain(t, w))
	assert.Equal(t, []int{0, 1, 2, 3}, seen)
}

func TestUpdaterSanitized(t *testing.T) {
	broken := UpdaterFunc(func(p Params, _ int) Params {
		p.Amplitude = math.NaN()
		p.Frequency = math.Inf(1)
		p.Phase = math.Inf(-1)
		return p
	})
	w, err := NewSine().DurationMs(1).Updater(broken).Finalize()
	require.NoError(t, err)
	s := drain(t, w)
	require.Len(t, s, 44)
	assert.Equal(t, make([]float64, 43), s[1:])
	assert.Equal(t, Params{DurationMs: 1, SampleRate: 44100}, w.Params())

	stop := UpdaterFunc(func(p Params, _ int) Params {
		p.DurationMs = -5
		return p
	})
	w, err = NewSine().DurationMs(1).Updater(stop).Finalize()
	require.NoError(t, err)
	assert.Len(t, drain(t, w), 1)
}
