package spectral

import "math"

// A ShapeFunc gives the relative spectral density at frequency f (Hz).
type ShapeFunc func(f float64) float64

// Standard noise colors.  Pink and Brown are zero at DC.
var (
	White  ShapeFunc = func(float64) float64 { return 1 }
	Pink   ShapeFunc = func(f float64) float64 { return inverse(math.Sqrt(f)) }
	Brown  ShapeFunc = func(f float64) float64 { return inverse(f) }
	Blue   ShapeFunc = math.Sqrt
	Violet ShapeFunc = func(f float64) float64 { return f }
)

func inverse(x float64) float64 {
	if x == 0 {
		return 0
	}
	return 1 / x
}

// FrequencyBins returns the center frequencies of the n/2+1 bins of the half
// spectrum of an n-sample signal at the given sample rate.
func FrequencyBins(n int, rate float64) []float64 {
	if n == 0 {
		return nil
	}
	f := make([]float64, n/2+1)
	for k := range f {
		f[k] = float64(k) * rate / float64(n)
	}
	return f
}

// Density evaluates shape over FrequencyBins(n, rate) and divides the curve
// by its root mean square, so that every shape injects the same total power.
func Density(n int, rate float64, shape ShapeFunc) []float64 {
	d := FrequencyBins(n, rate)
	var sum float64
	for k, f := range d {
		d[k] = shape(f)
		sum += d[k] * d[k]
	}
	if sum == 0 {
		return d
	}
	rms := math.Sqrt(sum / float64(len(d)))
	for k := range d {
		d[k] /= rms
	}
	return d
}

// Shape filters x so that its spectrum follows the given density shape.
func Shape(x []float64, rate float64, shape ShapeFunc) []float64 {
	X := RFFT(x)
	for k, d := range Density(len(x), rate, shape) {
		X[k] *= complex(d, 0)
	}
	return IRFFT(X, len(x))
}
