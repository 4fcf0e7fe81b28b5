package spectral

import "github.com/mjibson/go-dsp/spectral"

// Welch estimates the power spectral density of x by averaging Hann-windowed
// periodograms of half-overlapping segments.  segment is rounded up to an
// even length; zero selects 256.
func Welch(x []float64, rate float64, segment int) (density, freqs []float64) {
	if segment <= 0 {
		segment = 256
	}
	segment += segment % 2
	return spectral.Pwelch(x, rate, &spectral.PwelchOptions{
		NFFT:     segment,
		Noverlap: segment / 2,
	})
}
