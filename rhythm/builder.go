package rhythm

import (
	"errors"
	"math"

	"github.com/gordonklaus/synth"
)

type Builder struct {
	tempo   float64
	beat    Beat
	decay   float64
	filters []synth.Filter
	clamp   bool
}

// NewBuilder returns a builder for 60 bpm in quarter notes, without decay or
// clamping.
func NewBuilder() *Builder {
	return &Builder{tempo: 60, beat: Quarter}
}

// Tempo sets the tempo in quarter notes per minute.
func (b *Builder) Tempo(bpm float64) *Builder {
	b.tempo = bpm
	return b
}

func (b *Builder) Beat(beat Beat) *Builder {
	b.beat = beat
	return b
}

// Decay fades every hit with the given half life.  It runs before any other
// filter.
func (b *Builder) Decay(halfLifeMs float64) *Builder {
	b.decay = halfLifeMs
	return b
}

// Filter adds filters applied to every rendered hit.
func (b *Builder) Filter(f ...synth.Filter) *Builder {
	b.filters = append(b.filters, f...)
	return b
}

// Clamp cuts or pads every rendered hit to exactly its scheduled duration.
func (b *Builder) Clamp(clamp bool) *Builder {
	b.clamp = clamp
	return b
}

func positive(x float64) bool { return x > 0 && !math.IsInf(x, 0) }

func (b *Builder) Validate() []error {
	var errs []error
	if !positive(b.tempo) {
		errs = append(errs, ErrInvalidTempo)
	}
	if !positive(float64(b.beat)) {
		errs = append(errs, ErrInvalidBeat)
	}
	return errs
}

func (b *Builder) Finalize() (*Rhythm, error) {
	if err := errors.Join(b.Validate()...); err != nil {
		return nil, err
	}
	var filters []synth.Filter
	if b.decay > 0 {
		filters = append(filters, synth.Decay{HalfLifeMs: b.decay})
	}
	return &Rhythm{
		tempo:   b.tempo,
		beat:    b.beat,
		filters: append(filters, b.filters...),
		clamp:   b.clamp,
	}, nil
}
