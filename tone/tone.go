// Package tone represents musical pitches, either as raw frequencies or as
// indices into an equal-tempered note table rooted at A4 = 440 Hz and spanning
// the audible range.
package tone

import (
	"fmt"
	"math"
)

type Kind int

const (
	PitchKind Kind = iota
	NoteKind
)

// A Tone is either a Pitch (a raw frequency in Hz) or a Note (an index into
// the note table).  The zero Tone is a Pitch of 0 Hz.
type Tone struct {
	kind  Kind
	freq  float64
	index int
}

func Pitch(freq float64) (Tone, error) {
	switch {
	case math.IsNaN(freq):
		return Tone{}, ErrNaNFrequency
	case math.IsInf(freq, 0):
		return Tone{}, ErrInfiniteFrequency
	case freq < 0:
		return Tone{}, ErrNegativeFrequency
	}
	return Tone{kind: PitchKind, freq: freq}, nil
}

func Note(index int) (Tone, error) {
	if index < 0 || index >= len(notes) {
		return Tone{}, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfBoundsNote, index, len(notes))
	}
	return Tone{kind: NoteKind, index: index}, nil
}

// Default is the A4 note.
func Default() Tone {
	return Tone{kind: NoteKind, index: a4Index()}
}

func (t Tone) Kind() Kind { return t.kind }

// Index returns the note table index of a Note, and false for a Pitch.
func (t Tone) Index() (int, bool) {
	if t.kind != NoteKind {
		return 0, false
	}
	return t.index, true
}

func (t Tone) Frequency() float64 {
	if t.kind == NoteKind {
		return notes[t.index]
	}
	return t.freq
}

func (t Tone) AsPitch() Tone {
	return Tone{kind: PitchKind, freq: t.Frequency()}
}

// AsNote snaps a Pitch to the nearest tabulated note.  It fails if that note is
// not closer than the lowest tabulated frequency.
func (t Tone) AsNote() (Tone, error) {
	if t.kind == NoteKind {
		return t, nil
	}
	i := nearest(t.freq)
	if math.Abs(notes[i]-t.freq) >= Lowest() {
		return Tone{}, fmt.Errorf("%w: %g Hz", ErrNoEquivalentNote, t.freq)
	}
	return Note(i)
}

// Transpose shifts the tone by n semitones.  A Pitch is scaled by
// SemitoneRatio^n; a Note moves n places in the table.
func (t Tone) Transpose(n int) (Tone, error) {
	if t.kind == NoteKind {
		return Note(t.index + n)
	}
	return Pitch(t.freq * math.Pow(SemitoneRatio, float64(n)))
}

func (t Tone) Octave(n int) (Tone, error) { return t.Transpose(12 * n) }

func (t Tone) String() string {
	if t.kind == NoteKind {
		return noteName(t.index)
	}
	return fmt.Sprintf("%.2fHz", t.freq)
}
