package raster

import (
	"bytes"
	"fmt"
)

// SVG renders the bitmap as a minimal SVG document: one unit <rect> per lit
// pixel, y-flipped so the image reads top-down like PBM.
func (b *Bitmap) SVG() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		b.Width, b.Height, b.Width, b.Height)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if !b.Pixels[y][x] {
				continue
			}
			svgY := b.Height - 1 - y
			fmt.Fprintf(&buf, `<rect x="%d" y="%d" width="1" height="1" fill="black"/>`+"\n", x, svgY)
		}
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
