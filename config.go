package synth

import (
	"os"
	"strconv"
)

// Config holds rendering settings shared by the example programs.
type Config struct {
	SampleRate float64
	Tempo      float64
	Output     string
}

func DefaultConfig() *Config {
	return &Config{
		SampleRate: DefaultSampleRate,
		Tempo:      60,
		Output:     "out.wav",
	}
}

// LoadConfig starts from DefaultConfig and applies SYNTH_SAMPLE_RATE,
// SYNTH_TEMPO and SYNTH_OUTPUT from the environment.  Unparseable or
// non-positive numbers are ignored.
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if rate := os.Getenv("SYNTH_SAMPLE_RATE"); rate != "" {
		if val, err := strconv.ParseFloat(rate, 64); err == nil && validRate(val) {
			cfg.SampleRate = val
		}
	}

	if tempo := os.Getenv("SYNTH_TEMPO"); tempo != "" {
		if val, err := strconv.ParseFloat(tempo, 64); err == nil && validRate(val) {
			cfg.Tempo = val
		}
	}

	if out := os.Getenv("SYNTH_OUTPUT"); out != "" {
		cfg.Output = out
	}

	return cfg
}
