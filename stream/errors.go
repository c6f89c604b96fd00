package stream

import (
	"errors"
	"fmt"
)

var ErrFrameTooLarge = errors.New("frame too large")

// Error is a failure to read or decode the frame starting at byte Offset of
// the stream.
type Error struct {
	Offset int64
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("frame at offset %d: %v", e.Offset, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
