package synth

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAudio       = errors.New("invalid audio")
	ErrNaNSamples         = fmt.Errorf("%w: NaN samples", ErrInvalidAudio)
	ErrInfiniteSamples    = fmt.Errorf("%w: infinite samples", ErrInvalidAudio)
	ErrNegativeSampleRate = fmt.Errorf("%w: negative or non-finite sample rate", ErrInvalidAudio)

	ErrMismatchedSampleRate = fmt.Errorf("%w: mismatched sample rates", ErrInvalidAudio)
)
