package match

import (
	"errors"
	"fmt"
)

// ErrDataLoad is matched by every loader failure via errors.Is
var ErrDataLoad = errors.New("data load error")

// DataLoadError describes why an input row was rejected.
// Line is 1-based and counts the header; zero means the error is not tied to a row.
type DataLoadError struct {
	Line   int
	Column string
	Err    error
}

func (e *DataLoadError) Error() string {
	switch {
	case e.Line > 0 && e.Column != "":
		return fmt.Sprintf("data load error: line %d, column %q: %v", e.Line, e.Column, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("data load error: line %d: %v", e.Line, e.Err)
	case e.Column != "":
		return fmt.Sprintf("data load error: column %q: %v", e.Column, e.Err)
	default:
		return fmt.Sprintf("data load error: %v", e.Err)
	}
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrDataLoad) match any *DataLoadError
func (e *DataLoadError) Is(target error) bool {
	return target == ErrDataLoad
}
