package wave

import (
	"math"

	"github.com/gordonklaus/synth"
)

// Sine is amplitude·sin(2π·f·t + phase).
type Sine struct{ osc }

func sineAt(p Params, t float64) float64 {
	return p.Amplitude * math.Sin(2*math.Pi*p.Frequency*t+p.Phase)
}

func (s *Sine) Next() (float64, bool) { return s.next(sineAt) }

func (s *Sine) Sing() float64 {
	x, _ := s.Next()
	return x
}

func (s *Sine) ToAudio() (synth.Audio, error) { return synth.Render(s, s.params.SampleRate) }

func (s *Sine) Clone() Wave {
	c := *s
	return &c
}

// Pulse is +amplitude for the first DutyCycle of each period and
// -amplitude for the rest.
type Pulse struct {
	osc
	duty float64
}

func (s *Pulse) DutyCycle() float64 { return s.duty }

func (s *Pulse) Next() (float64, bool) {
	return s.next(func(p Params, t float64) float64 {
		period, t, ok := periodTime(p, t)
		if !ok {
			return 0
		}
		if mod(t, period) <= s.duty*period {
			return p.Amplitude
		}
		return -p.Amplitude
	})
}

func (s *Pulse) Sing() float64 {
	x, _ := s.Next()
	return x
}

func (s *Pulse) ToAudio() (synth.Audio, error) { return synth.Render(s, s.params.SampleRate) }

func (s *Pulse) Clone() Wave {
	c := *s
	return &c
}

// Triangle rises linearly from -amplitude to +amplitude and back once per
// period, passing upward through zero at phase 0.
type Triangle struct{ osc }

func triangleAt(p Params, t float64) float64 {
	period, t, ok := periodTime(p, t)
	if !ok {
		return 0
	}
	return 4*p.Amplitude*p.Frequency*math.Abs(mod(t-period/4, period)-period/2) - p.Amplitude
}

func (s *Triangle) Next() (float64, bool) { return s.next(triangleAt) }

func (s *Triangle) Sing() float64 {
	x, _ := s.Next()
	return x
}

func (s *Triangle) ToAudio() (synth.Audio, error) { return synth.Render(s, s.params.SampleRate) }

func (s *Triangle) Clone() Wave {
	c := *s
	return &c
}

// Sawtooth ramps linearly from -amplitude to +amplitude once per period,
// starting from zero at phase 0.
type Sawtooth struct{ osc }

func sawtoothAt(p Params, t float64) float64 {
	period, t, ok := periodTime(p, t)
	if !ok {
		return 0
	}
	return 2*p.Amplitude*p.Frequency*mod(t+period/2, period) - p.Amplitude
}

func (s *Sawtooth) Next() (float64, bool) { return s.next(sawtoothAt) }

func (s *Sawtooth) Sing() float64 {
	x, _ := s.Next()
	return x
}

func (s *Sawtooth) ToAudio() (synth.Audio, error) { return synth.Render(s, s.params.SampleRate) }

func (s *Sawtooth) Clone() Wave {
	c := *s
	return &c
}
