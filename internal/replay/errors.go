package replay

import (
	"fmt"

	"crease/internal/api"
)

// Sentinel errors shared with the api package so callers on either side of
// the boundary can match them with errors.Is
var (
	// ErrMatchFinished is the normal terminal signal from Advance, not a failure
	ErrMatchFinished = api.ErrMatchFinished
	// ErrOutOfRange is returned by Seek for targets outside [0, N]
	ErrOutOfRange = api.ErrOutOfRange
	// ErrDivisionUndefined is returned by RunRate when no overs were recorded
	ErrDivisionUndefined = api.ErrDivisionUndefined
)

// OutOfRangeError carries the rejected seek target
type OutOfRangeError struct {
	Target int
	Total  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("seek to ball %d: %v (valid range 0..%d)", e.Target, ErrOutOfRange, e.Total)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}
