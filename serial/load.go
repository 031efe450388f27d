package serial

import (
	"encoding/binary"

	"github.com/saxbospiral/sxbp/figure"
	"github.com/saxbospiral/sxbp/geom"
)

// Load parses b as the fixed binary SXBP format, distinguishing each
// failure mode (short header, bad magic, unsupported version, size
// mismatch). On any error the returned figure is nil; Load never mutates a
// caller-owned figure since it only ever builds one.
func Load(b []byte) (*figure.Figure, error) {
	if len(b) < headerSize {
		return nil, ErrHeaderTooShort
	}
	if string(b[0:4]) != Magic {
		return nil, ErrBadMagic
	}
	if b[4] != VersionMajor {
		return nil, ErrBadVersion
	}

	n := binary.BigEndian.Uint32(b[7:11])
	expected := headerSize + int(n)*recordSize
	if len(b) != expected {
		return nil, ErrBadDataSize
	}

	segments := make([]figure.Segment, n)
	for i := uint32(0); i < n; i++ {
		off := headerSize + int(i)*recordSize
		value := binary.BigEndian.Uint32(b[off : off+recordSize])
		segments[i] = figure.Segment{
			Direction: geom.Direction(value >> 30),
			Length:    value & 0x3FFFFFFF,
		}
	}

	f, err := figure.FromSegments(segments)
	if err != nil {
		return nil, err
	}
	// A dumped figure is assumed already fully refined (the round-trip
	// property); there is no wire-format field for solved_count, so Load
	// marks every loaded segment solved.
	f.AdvanceSolved(int(n))
	return f, nil
}
