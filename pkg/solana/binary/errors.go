package binary

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrEndOfInput      = errors.New("unexpected end of input")
	ErrInvalidBool     = errors.New("invalid bool value")
	ErrInvalidTag      = errors.New("invalid tag")
	ErrInvalidUTF8     = errors.New("invalid utf-8 string")
	ErrLengthExceeded  = errors.New("length exceeds remaining input")
	ErrValueOutOfRange = errors.New("value out of range")
)

// DecodeError records the input offset at which decoding failed.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Err, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
