package tone

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// octave0 holds the frequencies of C0 through B0, indexed by pitch class.
var octave0 [12]float64

func init() {
	for i := range octave0 {
		octave0[i] = A4 * math.Pow(2, float64(i-57)/12)
	}
}

var letters = map[byte]int{'c': 0, 'd': 2, 'e': 4, 'f': 5, 'g': 7, 'a': 9, 'b': 11}

// ParseNote parses names like "a4", "c#3", "ebb2" or "g" into a frequency.  The
// letter is case-insensitive; every 'b' after it lowers and every '#' raises
// the note by a semitone (the two cannot be mixed); trailing digits give the
// octave, which defaults to 0.
func ParseNote(name string) (float64, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidNoteName)
	}
	class, ok := letters[lower(name[0])]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
	}
	freq := octave0[class]

	rest := name[1:]
	switch {
	case strings.HasPrefix(rest, "b"):
		n := len(rest) - len(strings.TrimLeft(rest, "b"))
		freq /= math.Pow(SemitoneRatio, float64(n))
		rest = rest[n:]
	case strings.HasPrefix(rest, "#"):
		n := len(rest) - len(strings.TrimLeft(rest, "#"))
		freq *= math.Pow(SemitoneRatio, float64(n))
		rest = rest[n:]
	}

	if rest != "" {
		octave, err := strconv.ParseUint(rest, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
		}
		freq *= math.Pow(2, float64(octave))
	}
	return freq, nil
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

var intervals = map[string]int{
	"root": 0,
	"m2":   1,
	"M2":   2,
	"m3":   3,
	"M3":   4,
	"p4":   5,
	"3t":   6,
	"p5":   7,
	"m6":   8,
	"M6":   9,
	"m7":   10,
	"M7":   11,
}

// ParseInterval parses "interval@octaves" into a number of semitones, e.g.
// "M3@1" is a major third one octave up (16) and "3t@-2" a tritone two
// octaves down (-18).
func ParseInterval(s string) (int, error) {
	name, oct, ok := strings.Cut(s, "@")
	if !ok {
		return 0, fmt.Errorf("%w: %q has no octave", ErrInvalidInterval, s)
	}
	semitones, ok := intervals[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown interval %q", ErrInvalidInterval, name)
	}
	octaves, err := strconv.ParseInt(oct, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInterval, s)
	}
	return 12*int(octaves) + semitones, nil
}

// Resolve interprets s relative to base if it is an interval, and as an
// absolute note name otherwise.
func Resolve(base float64, s string) (float64, error) {
	if n, err := ParseInterval(s); err == nil {
		return base * math.Pow(SemitoneRatio, float64(n)), nil
	}
	return ParseNote(s)
}
