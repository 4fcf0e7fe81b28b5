// Bells renders four interlocking bell lines over a low sine and writes them
// to a WAV file.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/gordonklaus/synth"
	"github.com/gordonklaus/synth/rhythm"
	"github.com/gordonklaus/synth/wave"
)

var lines = [][]rhythm.Note{
	{{.75, "g3"}, {.75, "d3"}},
	{{-.25, ""}, {.5, "b3"}, {-.25, ""}, {.5, "a3"}},
	{{-.25, ""}, {.5, "d3"}, {-.25, ""}, {.5, "c#3"}},
	{{-.25, ""}, {.5, "f#3"}, {-.25, ""}, {.5, "f#3"}},
}

func main() {
	cfg := synth.LoadConfig()
	out := flag.String("o", cfg.Output, "output file")
	tempo := flag.Float64("tempo", cfg.Tempo, "tempo in bpm")
	repeat := flag.Int("repeat", 1, "extra repetitions of the phrase")
	flag.Parse()

	bell, err := wave.NewSine().
		Frequency(110).
		Amplitude(1 << 12).
		DurationMs(4000).
		SampleRate(cfg.SampleRate).
		Finalize()
	if err != nil {
		log.Fatal(err)
	}

	var rs []*rhythm.Rhythm
	for _, notes := range lines {
		r, err := rhythm.NewBuilder().Tempo(*tempo).Decay(400).Clamp(true).Finalize()
		if err != nil {
			log.Fatal(err)
		}
		rs = append(rs, r.HitsWithFrequency(bell, notes).Bis(*repeat))
	}

	a, err := rhythm.Mix(context.Background(), rs...)
	if err != nil {
		log.Fatal(err)
	}
	a = synth.Apply(a, synth.Envelope{AttackMs: 5, ReleaseMs: 200}, synth.DCBlocker{})
	log.Printf("rendered %.0fms, peak %.0f", a.DurationMs(), a.Peak())

	if err := a.WriteWAVFile(*out); err != nil {
		log.Fatal(err)
	}
}
