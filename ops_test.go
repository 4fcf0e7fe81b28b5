package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	a := mustAudio(t, []float64{1, 2}, 100)
	b := mustAudio(t, []float64{3}, 100)
	c := mustAudio(t, []float64{4, 5, 6}, 100)

	ab, err := Merge(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, ab.Samples())

	left, err := Merge(ab, c)
	require.NoError(t, err)
	bc, err := Merge(b, c)
	require.NoError(t, err)
	right, err := Merge(a, bc)
	require.NoError(t, err)
	assert.Equal(t, left, right)
	assert.Equal(t, a.Len()+b.Len()+c.Len(), left.Len())

	all, err := Concat(a, b, c)
	require.NoError(t, err)
	assert.Equal(t, left, all)
}

func TestSampleRatePolicy(t *testing.T) {
	a := mustAudio(t, []float64{1}, 100)
	b := mustAudio(t, []float64{1}, 200)
	unset := mustAudio(t, []float64{1}, 0)

	_, err := Merge(a, b)
	assert.ErrorIs(t, err, ErrMismatchedSampleRate)
	_, err = Overlap(a, b)
	assert.ErrorIs(t, err, ErrMismatchedSampleRate)
	assert.ErrorIs(t, err, ErrInvalidAudio)
	_, err = Mix(a, unset, b)
	assert.ErrorIs(t, err, ErrMismatchedSampleRate)

	m, err := Merge(unset, b)
	require.NoError(t, err)
	assert.Equal(t, 200.0, m.SampleRate())
	m, err = Overlap(a, unset)
	require.NoError(t, err)
	assert.Equal(t, 100.0, m.SampleRate())
}

func TestOverlap(t *testing.T) {
	a := mustAudio(t, []float64{1, 2, 3}, 100)
	b := mustAudio(t, []float64{10, 20, 30}, 100)
	short := mustAudio(t, []float64{5}, 100)

	ab, err := Overlap(a, b)
	require.NoError(t, err)
	ba, err := Overlap(b, a)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 22, 33}, ab.Samples())
	assert.Equal(t, ab, ba)

	as, err := Overlap(short, a)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 2, 3}, as.Samples())
	assert.Equal(t, []float64{1, 2, 3}, a.Samples())

	mixed, err := Mix(a, b, short)
	require.NoError(t, err)
	assert.Equal(t, []float64{16, 22, 33}, mixed.Samples())

	empty, err := Mix()
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestPad(t *testing.T) {
	a := mustAudio(t, make([]float64, 44100), 44100)
	assert.Equal(t, 44101, a.PadRight(1).Len())
	assert.Equal(t, 44101, a.PadLeft(1).Len())
	assert.Equal(t, 44100+4410, a.PadRightMs(100).Len())

	b := mustAudio(t, []float64{1, 2, 3}, 1000)
	assert.Equal(t, []float64{1, 2, 3, 0, 0}, b.PadRight(2).Samples())
	assert.Equal(t, []float64{0, 0, 1, 2, 3}, b.PadLeft(2).Samples())
	assert.Equal(t, []float64{0, 0, 0, 1, 2, 3}, b.PadLeftMs(3).Samples())
	assert.Equal(t, b, b.PadLeft(-1))

	_, back := b.PadLeft(7).Split(7)
	assert.Equal(t, b, back)

	one := mustAudio(t, []float64{1}, 44100).PadLeftMs(1000)
	require.Equal(t, 44101, one.Len())
	assert.Equal(t, 1.0, one.At(44100))
	assert.Equal(t, 0.0, one.At(0))
}

func TestSplit(t *testing.T) {
	a := mustAudio(t, []float64{1, 2, 3, 4}, 1000)
	for _, tc := range []struct {
		i          int
		head, tail []float64
	}{
		{0, []float64{}, []float64{1, 2, 3, 4}},
		{1, []float64{1}, []float64{2, 3, 4}},
		{4, []float64{1, 2, 3, 4}, []float64{}},
		{10, []float64{1, 2, 3, 4}, []float64{}},
		{-2, []float64{}, []float64{1, 2, 3, 4}},
	} {
		head, tail := a.Split(tc.i)
		assert.Equal(t, tc.head, append([]float64{}, head.Samples()...), "head at %d", tc.i)
		assert.Equal(t, tc.tail, append([]float64{}, tail.Samples()...), "tail at %d", tc.i)
		assert.Equal(t, a.SampleRate(), tail.SampleRate())
	}

	head, _ := a.SplitMs(2)
	assert.Equal(t, []float64{1, 2}, head.Samples())
}

func TestResizeReverse(t *testing.T) {
	a := mustAudio(t, []float64{1, 2, 3}, 10)
	assert.Equal(t, []float64{1, 2}, a.Resize(2).Samples())
	assert.Equal(t, []float64{1, 2, 3, 0}, a.Resize(4).Samples())
	assert.Equal(t, []float64{3, 2, 1}, a.Reverse().Samples())
	assert.Equal(t, 10.0, a.Reverse().SampleRate())
}
