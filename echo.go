package synth

type delayLine struct {
	buf []float64
	i   int
}

func newDelayLine(n int) *delayLine {
	return &delayLine{buf: make([]float64, n)}
}

// delay pushes x and returns the sample pushed len(buf) calls ago.
func (d *delayLine) delay(x float64) float64 {
	y := d.buf[d.i]
	d.buf[d.i] = x
	d.i = (d.i + 1) % len(d.buf)
	return y
}

// Echo feeds the output back into itself DelayMs later, scaled by Feedback.
// The buffer keeps its length.
type Echo struct {
	DelayMs  float64
	Feedback float64
}

func (e Echo) Apply(a Audio) Audio {
	n := MsToSamples(a.rate, e.DelayMs)
	if n == 0 {
		return a
	}
	line := newDelayLine(n)
	return a.Map(func(_ int, x float64) float64 {
		y := x + e.Feedback*line.buf[line.i]
		line.delay(y)
		return y
	})
}
