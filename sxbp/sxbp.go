package sxbp

import (
	"github.com/saxbospiral/sxbp/encode"
	"github.com/saxbospiral/sxbp/figure"
	"github.com/saxbospiral/sxbp/raster"
	"github.com/saxbospiral/sxbp/refine"
	"github.com/saxbospiral/sxbp/serial"
)

// BlankFigure returns an empty figure (N=0).
func BlankFigure() *figure.Figure {
	return figure.Blank()
}

// BeginFigure builds an unrefined figure from data.
func BeginFigure(data []byte) (*figure.Figure, Result) {
	f, err := encode.Encode(data)
	if err != nil {
		return nil, resultFromErr(err)
	}
	return f, OK
}

// Refine finalises f's segment lengths in place. opts are forwarded to
// refine.Run unchanged.
func Refine(f *figure.Figure, opts ...refine.Option) Result {
	if f == nil {
		return NullArgument
	}
	return resultFromErr(refine.Run(f, opts...))
}

// RenderToBitmap rasterises f into a caller-owned bitmap.
func RenderToBitmap(f *figure.Figure) (*raster.Bitmap, Result) {
	if f == nil {
		return nil, NullArgument
	}
	bmp, err := raster.Rasterize(f)
	if err != nil {
		return nil, resultFromErr(err)
	}
	return bmp, OK
}

// RenderToPBM rasterises f and renders the result as a plain PBM image.
func RenderToPBM(f *figure.Figure) ([]byte, Result) {
	bmp, res := RenderToBitmap(f)
	if res != OK {
		return nil, res
	}
	return bmp.PBM(), OK
}

// RenderToSVG rasterises f and renders the result as a minimal SVG document.
func RenderToSVG(f *figure.Figure) ([]byte, Result) {
	bmp, res := RenderToBitmap(f)
	if res != OK {
		return nil, res
	}
	return bmp.SVG(), OK
}

// Dump serialises f into the fixed binary SXBP format.
func Dump(f *figure.Figure) ([]byte, Result) {
	if f == nil {
		return nil, NullArgument
	}
	b, err := serial.Dump(f)
	if err != nil {
		return nil, resultFromErr(err)
	}
	return b, OK
}

// Load parses b as the fixed binary SXBP format.
func Load(b []byte) (*figure.Figure, Result) {
	if b == nil {
		return nil, NullArgument
	}
	f, err := serial.Load(b)
	if err != nil {
		return nil, resultFromErr(err)
	}
	return f, OK
}

// FreeFigure releases f's storage. A nil f is a no-op.
func FreeFigure(f *figure.Figure) {
	if f != nil {
		f.Release()
	}
}
