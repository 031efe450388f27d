package sxbp

import (
	"context"
	"errors"

	"github.com/saxbospiral/sxbp/collision"
	"github.com/saxbospiral/sxbp/encode"
	"github.com/saxbospiral/sxbp/figure"
	"github.com/saxbospiral/sxbp/heuristic"
	"github.com/saxbospiral/sxbp/raster"
	"github.com/saxbospiral/sxbp/refine"
	"github.com/saxbospiral/sxbp/serial"
)

// Result is a closed error taxonomy. Every fallible public operation in
// this package returns one in place of a Go error, so callers that want
// to switch on a named outcome can, without reaching past this façade
// into leaf-package sentinels.
type Result int

const (
	// OK means the operation succeeded.
	OK Result = iota

	// OOM means memory acquisition was refused. Go's allocator reports
	// exhaustion as a fatal runtime error, not a recoverable one, so this
	// implementation never returns OOM in practice; the value exists for
	// API completeness with the rest of the taxonomy.
	OOM

	// CapacityExceeded means the input was too large for figure storage.
	CapacityExceeded

	// BadHeaderSize means a loaded buffer was shorter than the fixed header.
	BadHeaderSize

	// BadMagic means a loaded buffer's magic bytes did not read "SXBP".
	BadMagic

	// BadVersion means a loaded buffer's major version is unsupported.
	BadVersion

	// BadDataSize means a loaded buffer's length did not match its header's
	// declared segment count, or a segment length overflowed the wire
	// format's field.
	BadDataSize

	// Unimplemented means the requested algorithm variant does not exist.
	Unimplemented

	// Cancelled means a progress callback, or the caller's context,
	// requested early termination.
	Cancelled

	// NullArgument means a required argument was nil.
	NullArgument

	// PreconditionFailed means an operation's precondition did not hold
	// (e.g. refining or rendering an empty figure).
	PreconditionFailed
)

// String renders r using its canonical SCREAMING_SNAKE_CASE name.
func (r Result) String() string {
	switch r {
	case OK:
		return "OK"
	case OOM:
		return "OOM"
	case CapacityExceeded:
		return "CAPACITY_EXCEEDED"
	case BadHeaderSize:
		return "BAD_HEADER_SIZE"
	case BadMagic:
		return "BAD_MAGIC"
	case BadVersion:
		return "BAD_VERSION"
	case BadDataSize:
		return "BAD_DATA_SIZE"
	case Unimplemented:
		return "UNIMPLEMENTED"
	case Cancelled:
		return "CANCELLED"
	case NullArgument:
		return "NULL_ARGUMENT"
	case PreconditionFailed:
		return "PRECONDITION_FAILED"
	default:
		return "UNKNOWN_RESULT"
	}
}

// resultFromErr classifies a leaf-package error into the closed Result
// taxonomy. nil maps to OK.
func resultFromErr(err error) Result {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, figure.ErrCapacityExceeded), errors.Is(err, encode.ErrCapacityExceeded):
		return CapacityExceeded
	case errors.Is(err, serial.ErrHeaderTooShort):
		return BadHeaderSize
	case errors.Is(err, serial.ErrBadMagic):
		return BadMagic
	case errors.Is(err, serial.ErrBadVersion):
		return BadVersion
	case errors.Is(err, serial.ErrBadDataSize), errors.Is(err, serial.ErrLengthOverflow):
		return BadDataSize
	case errors.Is(err, refine.ErrUnimplementedMethod):
		return Unimplemented
	case errors.Is(err, refine.ErrCancelled),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return Cancelled
	case errors.Is(err, figure.ErrEmptyFigure),
		errors.Is(err, raster.ErrEmptyFigure),
		errors.Is(err, refine.ErrEmptyFigure),
		errors.Is(err, collision.ErrIndexOutOfRange),
		errors.Is(err, heuristic.ErrIndexOutOfRange),
		errors.Is(err, figure.ErrIndexOutOfRange):
		return PreconditionFailed
	default:
		return PreconditionFailed
	}
}
