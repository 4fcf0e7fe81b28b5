package wave

import (
	"cmp"
	"log"
	"math"
	"slices"

	"github.com/gordonklaus/synth"
)

type ControlPoint struct {
	Time, Value float64 // seconds, Hz
}

// Glide is an Updater that moves a wave's frequency along a piecewise-linear
// path through control points, holding the end values outside them.  The
// phase is adjusted at every step so the waveform stays continuous.
type Glide struct {
	points []ControlPoint
}

func NewGlide(points ...ControlPoint) *Glide {
	for i := range points {
		if i > 0 && points[i].Time < points[i-1].Time {
			log.Printf("glide: control points out of order: %v", points)
			break
		}
	}
	points = slices.Clone(points)
	slices.SortStableFunc(points, func(a, b ControlPoint) int { return cmp.Compare(a.Time, b.Time) })
	return &Glide{points: points}
}

// At returns the frequency at time t, and false if there are no points.
func (g *Glide) At(t float64) (float64, bool) {
	if len(g.points) == 0 {
		return 0, false
	}
	i, _ := slices.BinarySearchFunc(g.points, t, func(p ControlPoint, t float64) int { return cmp.Compare(p.Time, t) })
	switch {
	case i == 0:
		return g.points[0].Value, true
	case i == len(g.points):
		return g.points[i-1].Value, true
	}
	a, b := g.points[i-1], g.points[i]
	if a.Time == b.Time {
		return b.Value, true
	}
	return a.Value + (b.Value-a.Value)*(t-a.Time)/(b.Time-a.Time), true
}

func (g *Glide) Update(p Params, index int) Params {
	t := synth.SamplesToSeconds(p.SampleRate, index+1)
	f, ok := g.At(t)
	if !ok || f == p.Frequency {
		return p
	}
	p.Phase = mod(p.Phase+2*math.Pi*(p.Frequency-f)*t, 2*math.Pi)
	p.Frequency = f
	return p
}
