package synth

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// PCM16 scales samples so that the loudest one maps to ±32767.  Silence maps
// to zeros.
func PCM16(samples []float64) []int16 {
	var peak float64
	for _, x := range samples {
		peak = math.Max(peak, math.Abs(x))
	}
	pcm := make([]int16, len(samples))
	if peak == 0 {
		return pcm
	}
	for i, x := range samples {
		pcm[i] = int16(math.MaxInt16 * x / peak)
	}
	return pcm
}

// wavRate is the integral rate written to WAV headers.  An unset rate is
// written as DefaultSampleRate.
func (a Audio) wavRate() int {
	if !validRate(a.rate) {
		return DefaultSampleRate
	}
	return int(math.Round(a.rate))
}

// WriteWAV encodes a as peak-normalized mono 16-bit PCM.
func (a Audio) WriteWAV(w io.WriteSeeker) error {
	rate := a.wavRate()
	pcm := PCM16(a.samples)
	data := make([]int, len(pcm))
	for i, x := range pcm {
		data[i] = int(x)
	}

	enc := wav.NewEncoder(w, rate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing WAV: %w", err)
	}
	return nil
}

func (a Audio) WriteWAVFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return a.WriteWAV(f)
}

// ReadWAV decodes a PCM WAV stream, averaging its channels down to mono and
// scaling samples into [-1, 1).
func ReadWAV(r io.ReadSeeker) (Audio, error) {
	d := wav.NewDecoder(r)
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return Audio{}, fmt.Errorf("decoding WAV: %w", err)
	}
	if buf == nil || d.NumChans == 0 || d.BitDepth == 0 {
		return Audio{}, errors.New("decoding WAV: no format chunk")
	}

	chans := int(d.NumChans)
	scale := math.Exp2(float64(d.BitDepth-1)) * float64(chans)
	s := make([]float64, len(buf.Data)/chans)
	for i := range s {
		for c := range chans {
			s[i] += float64(buf.Data[chans*i+c])
		}
		s[i] /= scale
	}
	return NewAudio(s, float64(d.SampleRate))
}

func ReadWAVFile(path string) (Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return Audio{}, err
	}
	defer f.Close()
	return ReadWAV(f)
}
