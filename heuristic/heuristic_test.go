package heuristic_test

import (
	"testing"

	"github.com/saxbospiral/sxbp/figure"
	"github.com/saxbospiral/sxbp/geom"
	"github.com/saxbospiral/sxbp/heuristic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildAdjacent returns a figure [anchor(Up,3), r(dirR,3), p(dirP,2)], so
// that r ends exactly where p starts; this makes the expected displacement
// for each of the eight same-axis (p, r) direction pairs a simple function
// of whether p and r point the same way.
func buildAdjacent(t *testing.T, dirR, dirP geom.Direction) *figure.Figure {
	t.Helper()
	f, err := figure.FromSegments([]figure.Segment{
		{Direction: figure.AnchorDirection, Length: figure.AnchorLength},
		{Direction: dirR, Length: 3},
		{Direction: dirP, Length: 2},
	})
	require.NoError(t, err)
	require.NoError(t, f.EnsureCachedThrough(2))
	return f
}

func TestSuggestEightParallelCases(t *testing.T) {
	cases := []struct {
		name     string
		dirR     geom.Direction
		dirP     geom.Direction
		expected uint32 // r.Length(3) + delta + 1
	}{
		{"up-up (same sense)", geom.Up, geom.Up, 7},
		{"up-down (opposite)", geom.Up, geom.Down, 4},
		{"down-up (opposite)", geom.Down, geom.Up, 4},
		{"down-down (same sense)", geom.Down, geom.Down, 7},
		{"left-left (same sense)", geom.Left, geom.Left, 7},
		{"left-right (opposite)", geom.Left, geom.Right, 4},
		{"right-left (opposite)", geom.Right, geom.Left, 4},
		{"right-right (same sense)", geom.Right, geom.Right, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := buildAdjacent(t, tc.dirR, tc.dirP)
			got, err := heuristic.Suggest(f, 3, 1, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestSuggestNonParallelGuard(t *testing.T) {
	f, err := figure.FromSegments([]figure.Segment{
		{Direction: figure.AnchorDirection, Length: figure.AnchorLength},
		{Direction: geom.Right, Length: 3},
		{Direction: geom.Up, Length: 5},
	})
	require.NoError(t, err)
	require.NoError(t, f.EnsureCachedThrough(2))

	got, err := heuristic.Suggest(f, 3, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(6), got) // p.Length(5) + 1
}

func TestSuggestPerfectionThreshold(t *testing.T) {
	f, err := figure.FromSegments([]figure.Segment{
		{Direction: figure.AnchorDirection, Length: figure.AnchorLength},
		{Direction: geom.Up, Length: 3},
		{Direction: geom.Up, Length: 4},
		{Direction: geom.Right, Length: 10},
	})
	require.NoError(t, err)

	got, err := heuristic.Suggest(f, 3, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), got) // p.Length(4) + 1, threshold short-circuits rule 3
}

func TestSuggestThresholdDisabledByZero(t *testing.T) {
	f := buildAdjacent(t, geom.Up, geom.Up)
	got, err := heuristic.Suggest(f, 3, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), got)
}

func TestSuggestRejectsNegativePrevIndex(t *testing.T) {
	f := buildAdjacent(t, geom.Up, geom.Up)
	_, err := heuristic.Suggest(f, 0, 0, 0)
	assert.ErrorIs(t, err, heuristic.ErrIndexOutOfRange)
}
