package serial

import "errors"

var (
	// ErrHeaderTooShort is returned when a buffer is shorter than the
	// fixed header (magic + version + count).
	ErrHeaderTooShort = errors.New("serial: buffer shorter than header")

	// ErrBadMagic is returned when the buffer's first 4 bytes are not "SXBP".
	ErrBadMagic = errors.New("serial: bad magic bytes")

	// ErrBadVersion is returned when the buffer's major version does not
	// match this implementation's.
	ErrBadVersion = errors.New("serial: unsupported major version")

	// ErrBadDataSize is returned when the buffer's length does not match
	// header size + 4*segment count (a truncated or padded buffer).
	ErrBadDataSize = errors.New("serial: segment data size mismatch")

	// ErrLengthOverflow is returned by Dump when a segment's length does
	// not fit in the wire format's 30-bit field.
	ErrLengthOverflow = errors.New("serial: segment length exceeds 30 bits")
)
