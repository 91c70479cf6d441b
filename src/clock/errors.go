package clock

import (
	"errors"
	"fmt"
)

// ErrInvalidValue indicates a value outside the closed interval [0,1] (NaN included).
var ErrInvalidValue = errors.New("value list must contain normalized values between 0 and 1.")

// ErrTooManyValues indicates more than MaxValues values.
var ErrTooManyValues = errors.New("value list has to contain no more than 5 items.")

// ErrNoValues indicates an empty value list.
var ErrNoValues = errors.New("value list must contain at least 1 item.")

// ValueError points at the offending item of a value list.
type ValueError struct {
	Index int
	Value float64
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%v (item %d is %v)", e.Err, e.Index, e.Value)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}
