package synth

import (
	"math"

	"github.com/gopxl/beep"
)

// Format describes a as a mono 16-bit beep stream.
func (a Audio) Format() beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(a.wavRate()),
		NumChannels: 1,
		Precision:   2,
	}
}

// Streamer plays a through beep, duplicating the mono signal on both
// channels.
func (a Audio) Streamer() beep.StreamSeeker {
	return &streamer{samples: a.samples}
}

type streamer struct {
	samples []float64
	pos     int
}

func (s *streamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	n = copy2(samples, s.samples[s.pos:])
	s.pos += n
	return n, true
}

func copy2(dst [][2]float64, src []float64) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = [2]float64{src[i], src[i]}
	}
	return n
}

func (s *streamer) Err() error    { return nil }
func (s *streamer) Len() int      { return len(s.samples) }
func (s *streamer) Position() int { return s.pos }

func (s *streamer) Seek(p int) error {
	s.pos = min(max(p, 0), len(s.samples))
	return nil
}

// ReadStreamer drains s into a buffer at the given rate, averaging the two
// channels.
func ReadStreamer(s beep.Streamer, rate beep.SampleRate) (Audio, error) {
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, x := range buf[:n] {
			out = append(out, (x[0]+x[1])/2)
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return Audio{}, err
	}
	for i, x := range out {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			out[i] = 0
		}
	}
	return NewAudio(out, float64(rate))
}
