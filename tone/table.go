package tone

import (
	"sort"
	"strconv"
)

const (
	A4 = 440.0

	// SemitoneRatio is the twelfth root of two.
	SemitoneRatio = 1.0594630943592953

	lowerLimit = 20.0
	upperLimit = 20000.0
)

var notes []float64

func init() {
	f := A4
	for f > lowerLimit {
		f /= SemitoneRatio
	}
	for f *= SemitoneRatio; f < upperLimit; f *= SemitoneRatio {
		notes = append(notes, f)
	}
}

// NumNotes is the size of the note table.
func NumNotes() int { return len(notes) }

// Lowest is the frequency of the lowest tabulated note.  It is also the
// tolerance used when snapping a pitch to a note.
func Lowest() float64 { return notes[0] }

// Notes returns a copy of the note table in increasing order.
func Notes() []float64 { return append([]float64(nil), notes...) }

// nearest returns the index of the tabulated note closest to f.
func nearest(f float64) int {
	i := sort.SearchFloat64s(notes, f)
	switch {
	case i == 0:
		return 0
	case i == len(notes):
		return len(notes) - 1
	case notes[i]-f < f-notes[i-1]:
		return i
	}
	return i - 1
}

var pitchClasses = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// a4Index is the table index of A4.
func a4Index() int { return nearest(A4) }

func noteName(i int) string {
	midi := 69 + i - a4Index()
	octave := midi/12 - 1
	return pitchClasses[midi%12] + strconv.Itoa(octave)
}
