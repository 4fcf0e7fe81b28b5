// Package wave generates sampled waveforms.  Each generator is a finite,
// pull-based sequence: Sing returns the next sample and Done reports
// exhaustion once DurationMs worth of samples have been produced.
package wave

import (
	"math"

	"github.com/gordonklaus/synth"
	"github.com/gordonklaus/synth/tone"
)

// A Wave is a finite sample generator.
type Wave interface {
	synth.Voice

	// Next returns the next sample, or false once the wave is exhausted.
	Next() (float64, bool)

	// ToAudio drains the remaining samples into a buffer.
	ToAudio() (synth.Audio, error)

	DurationMs() float64
	SetDurationMs(ms float64)
	SampleRate() float64

	// Clone returns an independent copy in the same state.
	Clone() Wave
}

// A Tonal wave has a pitch.  Clones of a Tonal wave are Tonal.
type Tonal interface {
	Wave
	Tone() tone.Tone
	SetTone(t tone.Tone)
}

// osc is the state shared by the periodic waveforms.
type osc struct {
	tone    tone.Tone
	params  Params
	index   int
	updater Updater
}

func (o *osc) Tone() tone.Tone { return o.tone }

func (o *osc) SetTone(t tone.Tone) {
	o.tone = t
	o.params.Frequency = t.Frequency()
}

func (o *osc) Params() Params      { return o.params }
func (o *osc) DurationMs() float64 { return o.params.DurationMs }
func (o *osc) SampleRate() float64 { return o.params.SampleRate }
func (o *osc) Done() bool          { return o.index >= o.params.Samples() }

func (o *osc) SetDurationMs(ms float64) {
	o.params.DurationMs = ms
	o.params = o.params.sanitize()
}

// next evaluates at at the current sample time and advances, consulting the
// updater if there is one.
func (o *osc) next(at func(p Params, t float64) float64) (float64, bool) {
	if o.Done() {
		return 0, false
	}
	x := at(o.params, synth.SamplesToSeconds(o.params.SampleRate, o.index))
	if o.updater != nil {
		p := o.updater.Update(o.params, o.index).sanitize()
		if p.Frequency != o.params.Frequency {
			o.tone, _ = tone.Pitch(p.Frequency)
		}
		o.params = p
	}
	o.index++
	return x, true
}

// periodTime returns the period of p and t shifted by p's phase, or false if
// p has no usable frequency.
func periodTime(p Params, t float64) (period, shifted float64, ok bool) {
	if !(p.Frequency > 0) || !finite(p.Frequency) {
		return 0, 0, false
	}
	period = 1 / p.Frequency
	return period, t + p.Phase*period/(2*math.Pi), true
}

// mod is x modulo m, in [0, m) for positive m.
func mod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
