package wave

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidWaveForm    = errors.New("invalid waveform")
	ErrNegativeDuration   = fmt.Errorf("%w: negative or non-finite duration", ErrInvalidWaveForm)
	ErrNegativeDutyCycle  = fmt.Errorf("%w: negative duty cycle", ErrInvalidWaveForm)
	ErrDutyCycleAboveOne  = fmt.Errorf("%w: duty cycle above one", ErrInvalidWaveForm)
	ErrNegativeSampleRate = fmt.Errorf("%w: negative or non-finite sample rate", ErrInvalidWaveForm)
)
