// Package rhythm sequences waveforms in time.  A Rhythm is a queue of hits
// and rests measured in beats; rendering places each hit at its absolute
// start and mixes everything into one buffer.
package rhythm

import (
	"context"
	"fmt"
	"math"
	"reflect"

	"github.com/gordonklaus/synth"
	"github.com/gordonklaus/synth/tone"
	"github.com/gordonklaus/synth/wave"
)

type Rhythm struct {
	tempo   float64
	beat    Beat
	queue   []Element
	startMs float64
	filters []synth.Filter
	clamp   bool
}

func (r *Rhythm) Tempo() float64 { return r.tempo }
func (r *Rhythm) Beat() Beat     { return r.beat }

// Len is the number of queued elements.
func (r *Rhythm) Len() int { return len(r.queue) }

func (r *Rhythm) Elements() []Element { return append([]Element(nil), r.queue...) }

// HitDurationMs converts a duration in beats to milliseconds.
func (r *Rhythm) HitDurationMs(beats float64) float64 {
	return 60000 / r.tempo / float64(r.beat) * beats
}

// Clone returns an independent copy, including copies of every queued wave.
func (r *Rhythm) Clone() *Rhythm {
	c := *r
	c.queue = make([]Element, len(r.queue))
	for i, e := range r.queue {
		c.queue[i] = clone(e)
	}
	c.filters = append([]synth.Filter(nil), r.filters...)
	return &c
}

// Hit schedules w for the given number of beats.  A non-positive duration
// schedules a Rest of its magnitude instead, as does a nil wave.
func (r *Rhythm) Hit(beats float64, w wave.Wave) *Rhythm {
	if beats <= 0 || isNil(w) {
		return r.Rest(beats)
	}
	r.queue = append(r.queue, Hit{beats, w})
	return r
}

// isNil reports whether w is nil or a nil pointer of some wave type.
func isNil(w wave.Wave) bool {
	if w == nil {
		return true
	}
	v := reflect.ValueOf(w)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func (r *Rhythm) Rest(beats float64) *Rhythm {
	r.queue = append(r.queue, Rest{math.Abs(beats)})
	return r
}

// HitsWithFrequency schedules a copy of base per note, retuned to the note's
// name or to its interval above base.  A note whose name cannot be resolved
// becomes a Rest of the same duration.
func (r *Rhythm) HitsWithFrequency(base wave.Tonal, notes []Note) *Rhythm {
	for _, n := range notes {
		f, err := tone.Resolve(base.Tone().Frequency(), n.Name)
		if err != nil {
			r.Rest(n.Beats)
			continue
		}
		t, err := tone.Pitch(f)
		if err != nil {
			r.Rest(n.Beats)
			continue
		}
		w := base.Clone().(wave.Tonal)
		w.SetTone(t)
		r.Hit(n.Beats, w)
	}
	return r
}

// HitsWithDuration schedules a copy of base for each duration.
func (r *Rhythm) HitsWithDuration(base wave.Wave, beats []float64) *Rhythm {
	for _, b := range beats {
		r.Hit(b, base.Clone())
	}
	return r
}

// HitsWithMatchingDuration is like HitsWithDuration, but each copy of base
// lasts exactly as long as its hit.
func (r *Rhythm) HitsWithMatchingDuration(base wave.Wave, beats []float64) *Rhythm {
	for _, b := range beats {
		w := base.Clone()
		w.SetDurationMs(r.HitDurationMs(math.Abs(b)))
		r.Hit(b, w)
	}
	return r
}

// Bis appends n more copies of the queued phrase.
func (r *Rhythm) Bis(n int) *Rhythm {
	phrase := r.queue
	for range n {
		for _, e := range phrase {
			r.queue = append(r.queue, clone(e))
		}
	}
	return r
}

// Next renders the next hit, skipping rests, and returns false once the
// queue is empty.  The buffer is left-padded to the hit's absolute start.
func (r *Rhythm) Next() (synth.Audio, bool, error) {
	for len(r.queue) > 0 {
		e := r.queue[0]
		r.queue[0] = nil
		r.queue = r.queue[1:]

		start := r.startMs
		duration := r.HitDurationMs(e.beats())
		r.startMs += duration

		switch e := e.(type) {
		case Rest:
			continue
		case Hit:
			a, err := r.renderHit(e, start, duration)
			return a, true, err
		}
	}
	return synth.Audio{}, false, nil
}

func (r *Rhythm) renderHit(h Hit, startMs, durationMs float64) (synth.Audio, error) {
	a, err := h.Wave.ToAudio()
	if err != nil {
		return synth.Audio{}, fmt.Errorf("rendering hit at %gms: %w", startMs, err)
	}
	a = synth.Apply(a, r.filters...)
	if r.clamp {
		a = a.Resize(synth.MsToSamples(a.SampleRate(), durationMs))
	}
	return a.PadLeftMs(startMs), nil
}

// ToAudio renders every remaining hit and overlaps them into one buffer.
func (r *Rhythm) ToAudio() (synth.Audio, error) {
	return r.render(context.Background())
}

func (r *Rhythm) render(ctx context.Context) (synth.Audio, error) {
	var out synth.Audio
	for {
		if err := ctx.Err(); err != nil {
			return synth.Audio{}, err
		}
		a, ok, err := r.Next()
		if err != nil {
			return synth.Audio{}, err
		}
		if !ok {
			return out, nil
		}
		if out, err = synth.Overlap(out, a); err != nil {
			return synth.Audio{}, err
		}
	}
}
