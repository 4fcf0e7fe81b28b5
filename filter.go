package synth

import "math"

// A Filter transforms a whole buffer.
type Filter interface {
	Apply(Audio) Audio
}

type FilterFunc func(Audio) Audio

func (f FilterFunc) Apply(a Audio) Audio { return f(a) }

// Apply runs a through filters in order.
func Apply(a Audio, filters ...Filter) Audio {
	for _, f := range filters {
		a = f.Apply(a)
	}
	return a
}

// Decay fades a buffer exponentially, halving its level every HalfLifeMs.  A
// non-positive half life leaves the buffer unchanged.
type Decay struct {
	HalfLifeMs float64
}

func (d Decay) Apply(a Audio) Audio {
	if !(d.HalfLifeMs > 0) {
		return a
	}
	k := math.Ln2 / d.HalfLifeMs
	return a.Map(func(i int, x float64) float64 {
		return x * math.Exp(-k*SamplesToMs(a.rate, i))
	})
}

// BitCrusher quantizes samples, relative to the buffer's peak, to Bits bits
// of resolution, truncating toward zero.
type BitCrusher struct {
	Bits int
}

func (b BitCrusher) Apply(a Audio) Audio {
	peak := a.Peak()
	if b.Bits <= 0 || b.Bits > 52 || peak == 0 {
		return a
	}
	q := math.Exp2(float64(b.Bits - 1))
	return a.Map(func(_ int, x float64) float64 {
		return math.Trunc(x/peak*q) / q * peak
	})
}

// Downsampler keeps every Factor'th sample and divides the sample rate
// accordingly.  It does not low-pass filter first.
type Downsampler struct {
	Factor int
}

func (d Downsampler) Apply(a Audio) Audio {
	f := max(d.Factor, 1)
	s := make([]float64, 0, (len(a.samples)+f-1)/f)
	for i := 0; i < len(a.samples); i += f {
		s = append(s, a.samples[i])
	}
	return Audio{s, a.rate / float64(f)}
}

// Upsampler inserts Factor-1 zeros after every sample and multiplies the
// sample rate accordingly.
type Upsampler struct {
	Factor int
}

func (u Upsampler) Apply(a Audio) Audio {
	f := max(u.Factor, 1)
	s := make([]float64, f*len(a.samples))
	for i, x := range a.samples {
		s[f*i] = x
	}
	return Audio{s, a.rate * float64(f)}
}

// DCBlocker is a one-pole high-pass filter.  CutoffHz defaults to 10.
type DCBlocker struct {
	CutoffHz float64
}

func (f DCBlocker) Apply(a Audio) Audio {
	if !validRate(a.rate) {
		return a
	}
	cutoff := f.CutoffHz
	if cutoff <= 0 {
		cutoff = 10
	}
	rc := 1 / (2 * math.Pi * cutoff)
	k := rc / (rc + 1/a.rate)
	var x0, y float64
	return a.Map(func(_ int, x float64) float64 {
		y = k * (y + x - x0)
		x0 = x
		return y
	})
}
