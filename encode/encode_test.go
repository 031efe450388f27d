package encode_test

import (
	"testing"

	"github.com/saxbospiral/sxbp/encode"
	"github.com/saxbospiral/sxbp/figure"
	"github.com/saxbospiral/sxbp/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEmptyInput(t *testing.T) {
	f, err := encode.Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, f.Len())
	assert.Equal(t, 1, f.SolvedCount())

	seg0, err := f.Segment(0)
	require.NoError(t, err)
	assert.Equal(t, figure.Segment{Direction: figure.AnchorDirection, Length: figure.AnchorLength}, seg0)
}

func TestEncodeSingleByteDirections(t *testing.T) {
	// "A" = 0x41 = 01000001, MSB-first.
	f, err := encode.Encode([]byte("A"))
	require.NoError(t, err)
	require.Equal(t, 9, f.Len())
	assert.Equal(t, 1, f.SolvedCount())

	want := []geom.Direction{
		figure.AnchorDirection, // segment 0, the anchor
		geom.Right, geom.Up, geom.Right, geom.Down,
		geom.Left, geom.Up, geom.Right, geom.Up,
	}
	for i, d := range want {
		seg, err := f.Segment(i)
		require.NoError(t, err)
		assert.Equalf(t, d, seg.Direction, "segment %d direction", i)
	}

	for i := 1; i < f.Len(); i++ {
		seg, err := f.Segment(i)
		require.NoError(t, err)
		assert.Equal(t, uint32(1), seg.Length)
	}
}

func TestEncodeSegmentCountMatchesInputLength(t *testing.T) {
	f, err := encode.Encode([]byte("SXBP"))
	require.NoError(t, err)
	assert.Equal(t, 33, f.Len())
}

func TestEncodeRejectsOversizedInput(t *testing.T) {
	data := make([]byte, figure.MaxSegments) // 1 + 8*len would overflow capacity
	_, err := encode.Encode(data)
	assert.ErrorIs(t, err, encode.ErrCapacityExceeded)
}
