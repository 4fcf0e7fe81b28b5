package synth

import "fmt"

// commonRate reconciles the sample rates of a and b.  Equal rates pass
// through and an unset rate adopts the other; anything else is an error.
func commonRate(a, b Audio) (float64, error) {
	switch {
	case a.rate == b.rate, b.rate == 0:
		return a.rate, nil
	case a.rate == 0:
		return b.rate, nil
	}
	return 0, fmt.Errorf("%w: %g Hz and %g Hz", ErrMismatchedSampleRate, a.rate, b.rate)
}

// Merge appends b to a.
func Merge(a, b Audio) (Audio, error) {
	rate, err := commonRate(a, b)
	if err != nil {
		return Audio{}, err
	}
	s := make([]float64, 0, len(a.samples)+len(b.samples))
	s = append(s, a.samples...)
	s = append(s, b.samples...)
	return Audio{s, rate}, nil
}

// Overlap sums a and b sample by sample, treating the shorter buffer as if
// it were padded with silence.
func Overlap(a, b Audio) (Audio, error) {
	rate, err := commonRate(a, b)
	if err != nil {
		return Audio{}, err
	}
	if len(a.samples) < len(b.samples) {
		a, b = b, a
	}
	s := append([]float64(nil), a.samples...)
	for i, x := range b.samples {
		s[i] += x
	}
	return Audio{s, rate}, nil
}

// Mix overlaps all of audio.  The result of mixing nothing is empty with an
// unset rate.
func Mix(audio ...Audio) (Audio, error) {
	return fold(Overlap, audio)
}

// Concat merges all of audio in order.
func Concat(audio ...Audio) (Audio, error) {
	return fold(Merge, audio)
}

func fold(op func(a, b Audio) (Audio, error), audio []Audio) (Audio, error) {
	var acc Audio
	for i, a := range audio {
		var err error
		if acc, err = op(acc, a); err != nil {
			return Audio{}, fmt.Errorf("buffer %d: %w", i, err)
		}
	}
	return acc, nil
}

// PadRight appends n samples of silence.
func (a Audio) PadRight(n int) Audio {
	return a.Resize(len(a.samples) + max(n, 0))
}

// PadLeft prepends n samples of silence.
func (a Audio) PadLeft(n int) Audio {
	n = max(n, 0)
	s := make([]float64, n+len(a.samples))
	copy(s[n:], a.samples)
	return Audio{s, a.rate}
}

func (a Audio) PadRightMs(ms float64) Audio { return a.PadRight(MsToSamples(a.rate, ms)) }
func (a Audio) PadLeftMs(ms float64) Audio  { return a.PadLeft(MsToSamples(a.rate, ms)) }

// Split divides a before sample i, which is clamped to [0, a.Len()].
func (a Audio) Split(i int) (head, tail Audio) {
	i = min(max(i, 0), len(a.samples))
	head = Audio{append([]float64(nil), a.samples[:i]...), a.rate}
	tail = Audio{append([]float64(nil), a.samples[i:]...), a.rate}
	return head, tail
}

func (a Audio) SplitMs(ms float64) (head, tail Audio) { return a.Split(MsToSamples(a.rate, ms)) }

// Resize truncates a to n samples or pads it with silence up to n.
func (a Audio) Resize(n int) Audio {
	s := make([]float64, max(n, 0))
	copy(s, a.samples)
	return Audio{s, a.rate}
}

func (a Audio) Reverse() Audio {
	n := len(a.samples)
	return a.Map(func(i int, _ float64) float64 { return a.samples[n-1-i] })
}
