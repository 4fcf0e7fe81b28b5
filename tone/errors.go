package tone

import (
	"errors"
	"fmt"
)

// ErrInvalidTone is wrapped by every error that rejects a Tone.
var ErrInvalidTone = errors.New("tone: invalid tone")

var (
	ErrNegativeFrequency = fmt.Errorf("%w: negative frequency", ErrInvalidTone)
	ErrNaNFrequency      = fmt.Errorf("%w: NaN frequency", ErrInvalidTone)
	ErrInfiniteFrequency = fmt.Errorf("%w: infinite frequency", ErrInvalidTone)
	ErrOutOfBoundsNote   = fmt.Errorf("%w: note index out of bounds", ErrInvalidTone)
	ErrNoEquivalentNote  = fmt.Errorf("%w: no equivalent note", ErrInvalidTone)
)

var (
	ErrInvalidNoteName = errors.New("tone: invalid note name")
	ErrInvalidInterval = errors.New("tone: invalid interval")
)
