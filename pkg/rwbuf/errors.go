package rwbuf

import "errors"

var (
	// ErrOverflow is returned by strict writes that would exceed the
	// buffer's available space. The failed write leaves the buffer
	// unchanged.
	ErrOverflow = errors.New("rwbuf: write overflows buffer")

	// ErrShapeMismatch is returned when a block's column count does not
	// match the buffer it is written to, or when a sample slice does not
	// divide into whole rows.
	ErrShapeMismatch = errors.New("rwbuf: block shape mismatch")

	// ErrInvalidArgument is returned by setters given negative sizes,
	// non-positive rates or out-of-range durations.
	ErrInvalidArgument = errors.New("rwbuf: invalid argument")
)
