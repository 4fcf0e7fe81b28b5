// Package synth holds rendered mono audio and the operations used to combine,
// filter and export it.  Waveforms are generated by package wave and
// sequenced in time by package rhythm.
package synth

import "math"

const DefaultSampleRate = 44100.0

// Audio is an immutable buffer of mono samples.  A sample rate of 0 means the
// rate is unset; such a buffer adopts the rate of whatever it is combined with.
type Audio struct {
	samples []float64
	rate    float64
}

// NewAudio validates samples and wraps a copy of them.
func NewAudio(samples []float64, rate float64) (Audio, error) {
	return NewAudioBuilder().WithSamples(samples).WithSampleRate(rate).Finalize()
}

// Samples returns a copy of the samples.
func (a Audio) Samples() []float64 { return append([]float64(nil), a.samples...) }

func (a Audio) SampleRate() float64 { return a.rate }
func (a Audio) Len() int            { return len(a.samples) }

// At returns sample i.
func (a Audio) At(i int) float64 { return a.samples[i] }

func (a Audio) DurationMs() float64 { return SamplesToMs(a.rate, len(a.samples)) }

// Peak is the largest absolute sample value.
func (a Audio) Peak() float64 {
	var p float64
	for _, x := range a.samples {
		p = math.Max(p, math.Abs(x))
	}
	return p
}

// RMS is the root mean square of the samples.
func (a Audio) RMS() float64 {
	if len(a.samples) == 0 {
		return 0
	}
	var sum float64
	for _, x := range a.samples {
		sum += x * x
	}
	return math.Sqrt(sum / float64(len(a.samples)))
}

// Gain scales every sample by g.
func (a Audio) Gain(g float64) Audio {
	return a.Map(func(_ int, x float64) float64 { return g * x })
}

// Map returns a copy of a with f applied to every sample.
func (a Audio) Map(f func(i int, x float64) float64) Audio {
	s := make([]float64, len(a.samples))
	for i, x := range a.samples {
		s[i] = f(i, x)
	}
	return Audio{s, a.rate}
}
