// Noise plays a tour of the noise colors, one second each, and writes it to
// a WAV file.  The spectral slope of each color is logged.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/gordonklaus/synth"
	"github.com/gordonklaus/synth/spectral"
	"github.com/gordonklaus/synth/wave"
)

func main() {
	cfg := synth.LoadConfig()
	out := flag.String("o", cfg.Output, "output file")
	seed := flag.Uint64("seed", 1, "noise seed")
	flag.Parse()

	var parts []synth.Audio
	for _, v := range []wave.NoiseVariant{wave.White, wave.Pink, wave.Brown, wave.Blue, wave.Violet} {
		n, err := wave.NewNoise().
			Variant(v).
			Seed(*seed).
			Amplitude(.25).
			DurationMs(1000).
			SampleRate(cfg.SampleRate).
			Finalize()
		if err != nil {
			log.Fatal(err)
		}
		a, err := n.ToAudio()
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("%s: slope %.1f dB/octave", v, slope(a))
		parts = append(parts, synth.Apply(a, synth.Envelope{AttackMs: 20, ReleaseMs: 100}))
	}

	a, err := synth.Concat(parts...)
	if err != nil {
		log.Fatal(err)
	}
	a = synth.Apply(a, synth.Limiter{Limit: .9, AttackMs: 5, DecayMs: 200})
	if err := a.WriteWAVFile(*out); err != nil {
		log.Fatal(err)
	}
}

// slope compares the power around 4 kHz to that around 2 kHz.
func slope(a synth.Audio) float64 {
	pxx, freqs := spectral.Welch(a.Samples(), a.SampleRate(), 1024)
	band := func(lo, hi float64) float64 {
		var sum float64
		for i, f := range freqs {
			if lo <= f && f < hi {
				sum += pxx[i]
			}
		}
		return sum
	}
	return 10*math.Log10(band(3500, 4500)/band(1750, 2250)) - 10*math.Log10(2)
}
