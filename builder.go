package synth

import (
	"errors"
	"math"
)

type AudioBuilder struct {
	samples []float64
	rate    float64
}

// NewAudioBuilder returns a builder for an empty buffer at DefaultSampleRate.
func NewAudioBuilder() *AudioBuilder {
	return &AudioBuilder{rate: DefaultSampleRate}
}

func (b *AudioBuilder) WithSamples(samples []float64) *AudioBuilder {
	b.samples = append([]float64(nil), samples...)
	return b
}

// WithLength replaces the samples with n zeros.
func (b *AudioBuilder) WithLength(n int) *AudioBuilder {
	b.samples = make([]float64, max(n, 0))
	return b
}

func (b *AudioBuilder) WithSampleRate(rate float64) *AudioBuilder {
	b.rate = rate
	return b
}

// Validate reports every reason the builder cannot be finalized.
func (b *AudioBuilder) Validate() []error {
	var errs []error
	var nan, inf bool
	for _, x := range b.samples {
		nan = nan || math.IsNaN(x)
		inf = inf || math.IsInf(x, 0)
	}
	if nan {
		errs = append(errs, ErrNaNSamples)
	}
	if inf {
		errs = append(errs, ErrInfiniteSamples)
	}
	if b.rate < 0 || math.IsNaN(b.rate) || math.IsInf(b.rate, 0) {
		errs = append(errs, ErrNegativeSampleRate)
	}
	return errs
}

func (b *AudioBuilder) Finalize() (Audio, error) {
	if err := errors.Join(b.Validate()...); err != nil {
		return Audio{}, err
	}
	return Audio{samples: b.samples, rate: b.rate}, nil
}
