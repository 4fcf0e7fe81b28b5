package rhythm

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRhythm = errors.New("invalid rhythm")
	ErrInvalidTempo  = fmt.Errorf("%w: tempo must be positive and finite", ErrInvalidRhythm)
	ErrInvalidBeat   = fmt.Errorf("%w: beat must be positive and finite", ErrInvalidRhythm)
)
