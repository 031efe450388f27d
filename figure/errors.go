package figure

import "errors"

// Sentinel errors for figure construction and mutation.
var (
	// ErrCapacityExceeded indicates the requested segment count exceeds MaxSegments.
	ErrCapacityExceeded = errors.New("figure: segment count exceeds capacity")

	// ErrIndexOutOfRange indicates a segment index was outside [0, Len()).
	ErrIndexOutOfRange = errors.New("figure: segment index out of range")

	// ErrEmptyFigure indicates an operation requires at least one segment.
	ErrEmptyFigure = errors.New("figure: figure has no segments")

	// ErrReleased indicates an operation was attempted on a released Figure.
	ErrReleased = errors.New("figure: figure has been released")
)

// MaxSegments bounds the number of segments a Figure may hold, guarding
// against pathologically large inputs. 8*B+1 segments requires
// B <= (MaxSegments-1)/8 input bytes.
const MaxSegments = 1 << 20
