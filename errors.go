package blit

import "errors"

// Common errors for blit operations. Every check happens before any byte
// moves: an operation that returns one of these has not touched the
// destination buffer.
var (
	// ErrOutOfBounds is returned when a placement (or placement plus source
	// extent) does not fit inside the declared destination size. Run the
	// requested placement through Clip first to shrink it to fit.
	ErrOutOfBounds = errors.New("blit: placement outside destination bounds")

	// ErrDstTooSmall is returned when the destination buffer holds fewer
	// bytes than its declared size and stride imply.
	ErrDstTooSmall = errors.New("blit: destination buffer smaller than declared size")

	// ErrSrcTooSmall is returned when the source buffer cannot supply one
	// full row for every row slot.
	ErrSrcTooSmall = errors.New("blit: source buffer smaller than decomposition")

	// ErrInvalidStride is returned when stride is not positive.
	ErrInvalidStride = errors.New("blit: stride must be positive")
)
