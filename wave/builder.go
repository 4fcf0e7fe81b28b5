package wave

import (
	"errors"
	"math"

	"github.com/gordonklaus/synth"
	"github.com/gordonklaus/synth/tone"
)

// Builder configures a periodic waveform of type W.  The zero duration
// produces no samples.
type Builder[W Tonal] struct {
	tone    tone.Tone
	toneErr error
	params  Params
	duty    float64
	updater Updater
	pulse   bool
	build   func(*Builder[W]) W
}

func newBuilder[W Tonal](build func(*Builder[W]) W) *Builder[W] {
	return &Builder[W]{
		tone:   tone.Default(),
		params: Params{Frequency: tone.Default().Frequency(), Amplitude: 1, SampleRate: synth.DefaultSampleRate},
		duty:   .5,
		build:  build,
	}
}

func NewSine() *Builder[*Sine] {
	return newBuilder(func(b *Builder[*Sine]) *Sine { return &Sine{b.osc()} })
}

func NewPulse() *Builder[*Pulse] {
	b := newBuilder(func(b *Builder[*Pulse]) *Pulse { return &Pulse{b.osc(), b.duty} })
	b.pulse = true
	return b
}

func NewTriangle() *Builder[*Triangle] {
	return newBuilder(func(b *Builder[*Triangle]) *Triangle { return &Triangle{b.osc()} })
}

func NewSawtooth() *Builder[*Sawtooth] {
	return newBuilder(func(b *Builder[*Sawtooth]) *Sawtooth { return &Sawtooth{b.osc()} })
}

func (b *Builder[W]) osc() osc {
	return osc{tone: b.tone, params: b.params.sanitize(), updater: b.updater}
}

func (b *Builder[W]) Tone(t tone.Tone) *Builder[W] {
	b.tone, b.toneErr = t, nil
	b.params.Frequency = t.Frequency()
	return b
}

// Frequency sets the tone to a pitch of f Hz.  An invalid f is reported by
// Finalize.
func (b *Builder[W]) Frequency(f float64) *Builder[W] {
	t, err := tone.Pitch(f)
	if err != nil {
		b.toneErr = err
		return b
	}
	return b.Tone(t)
}

func (b *Builder[W]) Amplitude(a float64) *Builder[W] {
	b.params.Amplitude = a
	return b
}

// Phase sets the phase in radians.
func (b *Builder[W]) Phase(rad float64) *Builder[W] {
	b.params.Phase = rad
	return b
}

func (b *Builder[W]) PhaseDeg(deg float64) *Builder[W] {
	return b.Phase(deg * math.Pi / 180)
}

func (b *Builder[W]) DurationMs(ms float64) *Builder[W] {
	b.params.DurationMs = ms
	return b
}

func (b *Builder[W]) SampleRate(rate float64) *Builder[W] {
	b.params.SampleRate = rate
	return b
}

// DutyCycle sets the fraction of each period a Pulse spends high.  Other
// waveforms ignore it.
func (b *Builder[W]) DutyCycle(d float64) *Builder[W] {
	b.duty = d
	return b
}

func (b *Builder[W]) Updater(u Updater) *Builder[W] {
	b.updater = u
	return b
}

func (b *Builder[W]) Validate() []error {
	var errs []error
	if b.toneErr != nil {
		errs = append(errs, b.toneErr)
	}
	errs = append(errs, validate(b.params.DurationMs, b.params.SampleRate)...)
	if b.pulse {
		switch {
		case b.duty < 0 || math.IsNaN(b.duty):
			errs = append(errs, ErrNegativeDutyCycle)
		case b.duty > 1:
			errs = append(errs, ErrDutyCycleAboveOne)
		}
	}
	return errs
}

func validate(durationMs, rate float64) []error {
	var errs []error
	if durationMs < 0 || !finite(durationMs) {
		errs = append(errs, ErrNegativeDuration)
	}
	if rate < 0 || !finite(rate) {
		errs = append(errs, ErrNegativeSampleRate)
	}
	return errs
}

func (b *Builder[W]) Finalize() (W, error) {
	if err := errors.Join(b.Validate()...); err != nil {
		var zero W
		return zero, err
	}
	return b.build(b), nil
}
