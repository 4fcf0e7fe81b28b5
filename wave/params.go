package wave

import (
	"math"

	"github.com/gordonklaus/synth"
)

// Params are the per-sample parameters of a periodic waveform.
type Params struct {
	Frequency  float64 // Hz
	Amplitude  float64
	Phase      float64 // radians
	DurationMs float64
	SampleRate float64 // Hz
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// sanitize zeroes non-finite values, and negative ones where they make no
// sense.
func (p Params) sanitize() Params {
	for _, x := range []*float64{&p.Frequency, &p.Amplitude, &p.Phase, &p.DurationMs, &p.SampleRate} {
		if !finite(*x) {
			*x = 0
		}
	}
	p.Frequency = max(p.Frequency, 0)
	p.DurationMs = max(p.DurationMs, 0)
	p.SampleRate = max(p.SampleRate, 0)
	return p
}

// Samples is the total number of samples a waveform with these parameters
// produces.
func (p Params) Samples() int { return synth.MsToSamples(p.SampleRate, p.DurationMs) }

// An Updater rewrites a waveform's parameters after each sample it
// produces.  index is the index of that sample.  The returned parameters are
// sanitized before use.
type Updater interface {
	Update(p Params, index int) Params
}

type UpdaterFunc func(p Params, index int) Params

func (f UpdaterFunc) Update(p Params, index int) Params { return f(p, index) }
