package synth

// A Voice produces samples one at a time until it is done.
type Voice interface {
	Sing() float64
	Done() bool
}

// Render drains v into a buffer at the given rate.
func Render(v Voice, rate float64) (Audio, error) {
	var s []float64
	for !v.Done() {
		s = append(s, v.Sing())
	}
	return NewAudio(s, rate)
}

// MultiVoice sums a set of voices, dropping each once it is done.
type MultiVoice struct {
	voices []Voice
}

func NewMultiVoice(voices ...Voice) *MultiVoice {
	m := &MultiVoice{}
	for _, v := range voices {
		m.Add(v)
	}
	return m
}

func (m *MultiVoice) Add(v Voice) {
	if !v.Done() {
		m.voices = append(m.voices, v)
	}
}

func (m *MultiVoice) Sing() float64 {
	var x float64
	live := m.voices[:0]
	for _, v := range m.voices {
		x += v.Sing()
		if !v.Done() {
			live = append(live, v)
		}
	}
	clear(m.voices[len(live):])
	m.voices = live
	return x
}

func (m *MultiVoice) Done() bool { return len(m.voices) == 0 }
