package serial

import (
	"encoding/binary"

	"github.com/saxbospiral/sxbp/figure"
)

// Dump renders f's segments into the fixed binary SXBP format: Magic,
// 3-byte version, big-endian 32-bit segment count, then one 4-byte packed
// direction+length record per segment.
func Dump(f *figure.Figure) ([]byte, error) {
	n := f.Len()
	buf := make([]byte, headerSize+recordSize*n)
	copy(buf[0:4], Magic)
	buf[4], buf[5], buf[6] = VersionMajor, VersionMinor, VersionPatch
	binary.BigEndian.PutUint32(buf[7:11], uint32(n))

	for i := 0; i < n; i++ {
		seg, err := f.Segment(i)
		if err != nil {
			return nil, err
		}
		if seg.Length > maxLength {
			return nil, ErrLengthOverflow
		}
		value := uint32(seg.Direction)<<30 | seg.Length
		off := headerSize + i*recordSize
		binary.BigEndian.PutUint32(buf[off:off+recordSize], value)
	}
	return buf, nil
}
