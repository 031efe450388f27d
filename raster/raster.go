package raster

import (
	"github.com/saxbospiral/sxbp/figure"
	"github.com/saxbospiral/sxbp/geom"
)

// Rasterize computes the axis-aligned bounding box of every vertex a
// figure's segments traverse and returns a Bitmap of dimensions
// (bbox.width+1, bbox.height+1) with a pixel lit for every unit cell the
// figure visits. Rasterize is deterministic and total: it never fails for
// a well-formed figure, aside from the degenerate empty figure.
func Rasterize(f *figure.Figure) (*Bitmap, error) {
	n := f.Len()
	if n == 0 {
		return nil, ErrEmptyFigure
	}
	last := n - 1
	if err := f.EnsureCachedThrough(last); err != nil {
		return nil, err
	}

	var minX, maxX, minY, maxY int64
	first := true
	var all []geom.Vector
	for i := 0; i <= last; i++ {
		pts, err := f.SegmentPoints(i)
		if err != nil {
			return nil, err
		}
		all = append(all, pts...)
		for _, p := range pts {
			if first {
				minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
				first = false
				continue
			}
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}

	width := int(maxX-minX) + 1
	height := int(maxY-minY) + 1
	bmp := newBitmap(width, height, minX, minY)
	for _, p := range all {
		x, y := bmp.worldToLocal(p.X, p.Y)
		bmp.set(x, y)
	}
	return bmp, nil
}
