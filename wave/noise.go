package wave

import (
	"errors"
	"math"
	"math/rand/v2"

	"github.com/gordonklaus/synth"
	"github.com/gordonklaus/synth/spectral"
)

type NoiseVariant int

const (
	White NoiseVariant = iota
	Pink
	Brown
	Blue
	Violet
)

func (v NoiseVariant) String() string {
	switch v {
	case White:
		return "white"
	case Pink:
		return "pink"
	case Brown:
		return "brown"
	case Blue:
		return "blue"
	case Violet:
		return "violet"
	}
	return "unknown"
}

func (v NoiseVariant) shape() spectral.ShapeFunc {
	switch v {
	case Pink:
		return spectral.Pink
	case Brown:
		return spectral.Brown
	case Blue:
		return spectral.Blue
	case Violet:
		return spectral.Violet
	}
	return spectral.White
}

// Noise is Gaussian noise, optionally colored.  White noise is produced one
// sample at a time; the other variants shape the spectrum of the whole
// duration at once, on the first pull.
type Noise struct {
	amplitude  float64
	durationMs float64
	rate       float64
	seed       uint64
	variant    NoiseVariant
	src        rand.PCG
	index      int
	block      []float64
}

// normal draws a standard normal sample with the Box-Muller transform.
func (n *Noise) normal() float64 {
	u1 := (float64(n.src.Uint64()>>32) + 1) / (1 << 32)
	u2 := float64(n.src.Uint64()>>32) / (1 << 32)
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

func (n *Noise) samples() int {
	if n.block != nil {
		return len(n.block)
	}
	return synth.MsToSamples(n.rate, n.durationMs)
}

func (n *Noise) Done() bool { return n.index >= n.samples() }

func (n *Noise) Next() (float64, bool) {
	if n.Done() {
		return 0, false
	}
	if n.variant == White {
		n.index++
		return n.amplitude * n.normal(), true
	}
	if n.block == nil {
		n.block = make([]float64, n.samples()-n.index)
		for i := range n.block {
			n.block[i] = n.normal()
		}
		n.block = spectral.Shape(n.block, n.rate, n.variant.shape())
		n.block = append(make([]float64, n.index), n.block...)
	}
	x := n.amplitude * n.block[n.index]
	n.index++
	return x, true
}

func (n *Noise) Sing() float64 {
	x, _ := n.Next()
	return x
}

func (n *Noise) ToAudio() (synth.Audio, error) { return synth.Render(n, n.rate) }

func (n *Noise) DurationMs() float64   { return n.durationMs }
func (n *Noise) SampleRate() float64   { return n.rate }
func (n *Noise) Seed() uint64          { return n.seed }
func (n *Noise) Variant() NoiseVariant { return n.variant }

// SetDurationMs changes the duration.  It has no effect on colored noise
// once the first sample has been pulled.
func (n *Noise) SetDurationMs(ms float64) {
	if !finite(ms) {
		ms = 0
	}
	n.durationMs = max(ms, 0)
}

func (n *Noise) Clone() Wave {
	c := *n
	c.block = append([]float64(nil), n.block...)
	return &c
}

type NoiseBuilder struct {
	amplitude  float64
	durationMs float64
	rate       float64
	seed       uint64
	variant    NoiseVariant
}

// NewNoise returns a builder for white noise of amplitude 1 with seed 1.
func NewNoise() *NoiseBuilder {
	return &NoiseBuilder{amplitude: 1, rate: synth.DefaultSampleRate, seed: 1}
}

func (b *NoiseBuilder) Amplitude(a float64) *NoiseBuilder {
	b.amplitude = a
	return b
}

func (b *NoiseBuilder) DurationMs(ms float64) *NoiseBuilder {
	b.durationMs = ms
	return b
}

func (b *NoiseBuilder) SampleRate(rate float64) *NoiseBuilder {
	b.rate = rate
	return b
}

func (b *NoiseBuilder) Seed(seed uint64) *NoiseBuilder {
	b.seed = seed
	return b
}

func (b *NoiseBuilder) Variant(v NoiseVariant) *NoiseBuilder {
	b.variant = v
	return b
}

func (b *NoiseBuilder) Validate() []error { return validate(b.durationMs, b.rate) }

func (b *NoiseBuilder) Finalize() (*Noise, error) {
	if err := errors.Join(b.Validate()...); err != nil {
		return nil, err
	}
	amp := b.amplitude
	if !finite(amp) {
		amp = 0
	}
	return &Noise{
		amplitude:  amp,
		durationMs: b.durationMs,
		rate:       b.rate,
		seed:       b.seed,
		variant:    b.variant,
		src:        *rand.NewPCG(b.seed, b.seed),
	}, nil
}
