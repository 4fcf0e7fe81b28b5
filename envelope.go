package synth

import "math"

// Envelope shapes a buffer with an exponential attack from silence and an
// exponential release over its final ReleaseMs.  Each stage covers 99% of
// its range in its given time.
type Envelope struct {
	AttackMs, ReleaseMs float64
}

// stageCoef is the per-sample factor that shrinks a distance to 1% over ms.
func stageCoef(rate, ms float64) float64 {
	n := rate * ms / 1000
	if !(n > 0) {
		return 0
	}
	return math.Pow(.01, 1/n)
}

func (e Envelope) Apply(a Audio) Audio {
	up := stageCoef(a.rate, e.AttackMs)
	down := stageCoef(a.rate, e.ReleaseMs)
	release := len(a.samples) - MsToSamples(a.rate, e.ReleaseMs)
	var g float64
	return a.Map(func(i int, x float64) float64 {
		if i >= release {
			g *= down
		} else {
			g = 1 - (1-g)*up
		}
		return g * x
	})
}
