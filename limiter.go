package synth

import "math"

type rmsMeter struct {
	buf []float64
	i   int
	sum float64
}

func newRMSMeter(n int) *rmsMeter {
	return &rmsMeter{buf: make([]float64, n)}
}

func (m *rmsMeter) add(x float64) {
	m.sum -= m.buf[m.i]
	m.buf[m.i] = x * x
	m.sum += m.buf[m.i]
	m.i = (m.i + 1) % len(m.buf)
}

func (m *rmsMeter) amplitude() float64 {
	return math.Sqrt(max(m.sum, 0) / float64(len(m.buf)))
}

// Limiter scales a buffer down wherever its RMS level, measured over
// AttackMs, rises past Limit, and recovers over DecayMs.  Peaks may still
// exceed Limit.  Gain is at most 1 and the output has the input's length.
type Limiter struct {
	Limit             float64
	AttackMs, DecayMs float64
}

func (l Limiter) Apply(a Audio) Audio {
	n := MsToSamples(a.rate, l.AttackMs)
	if n == 0 || !(l.Limit > 0) {
		return a
	}
	down := -1 / float64(n)
	up := 1 / float64(max(MsToSamples(a.rate, l.DecayMs), 1))
	rms := newRMSMeter(n)
	line := newDelayLine(n)

	// The input is delayed by the attack time so the gain can react before
	// a loud passage arrives; the lag is trimmed from the output.
	out := make([]float64, len(a.samples))
	var amp float64
	for i := 0; i < len(a.samples)+n; i++ {
		var x float64
		if i < len(a.samples) {
			x = a.samples[i]
		}
		gain := math.Exp2(amp)
		rms.add(x)
		if y := rms.amplitude() / l.Limit; y > 0 && math.Tanh(y)/y < gain {
			amp += down
		} else {
			amp = min(amp+up, 0)
		}
		y := gain * line.delay(x)
		if i >= n {
			out[i-n] = y
		}
	}
	return Audio{out, a.rate}
}
