package tga

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionTooLarge is returned when width or height does not fit the 16-bit header fields
	ErrDimensionTooLarge = errors.New("tga: dimension too large")

	// ErrPixelCountMismatch is returned when the pixel slice does not hold exactly width*height pixels
	ErrPixelCountMismatch = errors.New("tga: pixel count mismatch")

	// ErrSinkWriteFailed matches every *WriteError
	ErrSinkWriteFailed = errors.New("tga: sink write failed")
)

// WriteError reports a failure of the destination writer. Err is the writer's own error.
type WriteError struct {
	Written int64
	Err     error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s after %d bytes: %s", ErrSinkWriteFailed, e.Written, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

func (e *WriteError) Is(target error) bool {
	return target == ErrSinkWriteFailed
}
