package synth

import "math"

func validRate(rate float64) bool {
	return rate > 0 && !math.IsInf(rate, 0)
}

// SamplesToMs converts a sample count to milliseconds.  An unset or invalid
// rate gives 0.
func SamplesToMs(rate float64, n int) float64 {
	return 1000 * SamplesToSeconds(rate, n)
}

func SamplesToSeconds(rate float64, n int) float64 {
	if !validRate(rate) {
		return 0
	}
	return float64(n) / rate
}

// MsToSamples converts milliseconds to the nearest whole number of samples.
// Negative or non-finite durations and invalid rates give 0.
func MsToSamples(rate, ms float64) int {
	if !validRate(rate) || !(ms > 0) || math.IsInf(ms, 0) {
		return 0
	}
	return int(math.Round(ms / 1000 * rate))
}
