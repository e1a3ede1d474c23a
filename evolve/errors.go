package evolve

import (
	"github.com/jsphweid/genecomposer/composition"
	"github.com/pkg/errors"
)

var (
	ErrInvalidReference = composition.ErrInvalidReference
	ErrConfiguration    = errors.New("invalid engine configuration")
	ErrLengthMismatch   = errors.New("parents differ in length")
	ErrNotInitialized   = errors.New("engine has not been initialized")
)
