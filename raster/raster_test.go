package raster_test

import (
	"bytes"
	"testing"

	"github.com/saxbospiral/sxbp/figure"
	"github.com/saxbospiral/sxbp/geom"
	"github.com/saxbospiral/sxbp/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(t *testing.T) *figure.Figure {
	t.Helper()
	f, err := figure.FromSegments([]figure.Segment{
		{Direction: figure.AnchorDirection, Length: 3},
		{Direction: geom.Right, Length: 3},
		{Direction: geom.Down, Length: 2},
	})
	require.NoError(t, err)
	return f
}

func TestRasterizeEmptyFigure(t *testing.T) {
	_, err := raster.Rasterize(figure.Blank())
	assert.ErrorIs(t, err, raster.ErrEmptyFigure)
}

func TestRasterizeDimensions(t *testing.T) {
	bmp, err := raster.Rasterize(square(t))
	require.NoError(t, err)
	// x ranges 0..3 (width 4), y ranges 0..3 (height 4).
	assert.Equal(t, 4, bmp.Width)
	assert.Equal(t, 4, bmp.Height)
}

func TestRasterizeIsSimplePath(t *testing.T) {
	bmp, err := raster.Rasterize(square(t))
	require.NoError(t, err)
	assert.True(t, bmp.IsSimplePath())
}

func TestComponentsSingleComponent(t *testing.T) {
	bmp, err := raster.Rasterize(square(t))
	require.NoError(t, err)
	comps := bmp.Components()
	assert.Len(t, comps, 1)
}

func TestPBMHeader(t *testing.T) {
	bmp, err := raster.Rasterize(square(t))
	require.NoError(t, err)
	out := bmp.PBM()
	assert.True(t, bytes.HasPrefix(out, []byte("P1\n4 4\n")))
}

func TestSVGWellFormed(t *testing.T) {
	bmp, err := raster.Rasterize(square(t))
	require.NoError(t, err)
	out := bmp.SVG()
	assert.True(t, bytes.HasPrefix(out, []byte("<svg")))
	assert.True(t, bytes.HasSuffix(out, []byte("</svg>\n")))
}

func TestLitCountMatchesSegmentLengths(t *testing.T) {
	f := square(t)
	bmp, err := raster.Rasterize(f)
	require.NoError(t, err)
	// The anchor plus every unit step traversed, each point counted once.
	assert.Equal(t, 1+3+3+2, bmp.LitCount())
}
