package raster

import (
	"bytes"
	"fmt"
)

// PBM renders the bitmap as a plain (ASCII, "P1") PBM image: the portable
// bitmap format, one of the simplest raster formats available and a
// natural fit for a 1-bit-per-pixel figure rendering.
func (b *Bitmap) PBM() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "P1\n%d %d\n", b.Width, b.Height)
	for y := b.Height - 1; y >= 0; y-- {
		for x := 0; x < b.Width; x++ {
			if x > 0 {
				buf.WriteByte(' ')
			}
			if b.Pixels[y][x] {
				buf.WriteByte('1')
			} else {
				buf.WriteByte('0')
			}
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
