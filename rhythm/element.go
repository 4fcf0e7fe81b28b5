package rhythm

import "github.com/gordonklaus/synth/wave"

// Beat is the note value that one unit of relative duration stands for,
// given as the number of such notes in a quarter note.
type Beat float64

const (
	Whole        Beat = .25
	Half         Beat = .5
	Quarter      Beat = 1
	Eighth       Beat = 2
	Sixteenth    Beat = 4
	ThirtySecond Beat = 8
	Triplet      Beat = 1.5
)

func Custom(factor float64) Beat { return Beat(factor) }

// An Element is either a Rest or a Hit.  Durations are in beats.
type Element interface {
	beats() float64
}

type Rest struct {
	Beats float64
}

type Hit struct {
	Beats float64
	Wave  wave.Wave
}

func (r Rest) beats() float64 { return r.Beats }
func (h Hit) beats() float64  { return h.Beats }

func clone(e Element) Element {
	if h, ok := e.(Hit); ok {
		h.Wave = h.Wave.Clone()
		return h
	}
	return e
}

// Note pairs a duration in beats with a note name or interval, as understood
// by tone.Resolve.
type Note struct {
	Beats float64
	Name  string
}
