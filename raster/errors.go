package raster

import "errors"

// Sentinel errors for raster operations.
var (
	// ErrEmptyFigure indicates the figure has no segments to rasterize.
	ErrEmptyFigure = errors.New("raster: figure has no segments")
)
