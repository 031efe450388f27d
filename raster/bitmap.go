package raster

// Bitmap holds the rasterised form of a figure: a rectangular grid of
// pixels translated so its bounding box starts at (0,0), plus the world
// offset needed to map back to the figure's own lattice coordinates.
//
// Adapted from gridgraph.GridGraph: Width/Height/neighborOffsets/InBounds/
// index/Coordinate keep the same shape, but CellValues (arbitrary ints)
// become Pixels (ink/no-ink booleans) and connectivity is fixed at
// 4-directional, since an axis-aligned polyline never needs diagonals.
type Bitmap struct {
	Width, Height  int
	OriginX, OriginY int64
	Pixels         [][]bool // Pixels[y][x], row-major

	neighborOffsets [][2]int
}

// conn4 is the fixed 4-directional neighbor offset table (N, E, S, W).
var conn4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// newBitmap allocates a zero-filled (all unlit) Width x Height bitmap.
func newBitmap(width, height int, originX, originY int64) *Bitmap {
	pixels := make([][]bool, height)
	for y := range pixels {
		pixels[y] = make([]bool, width)
	}
	return &Bitmap{
		Width:           width,
		Height:          height,
		OriginX:         originX,
		OriginY:         originY,
		Pixels:          pixels,
		neighborOffsets: conn4,
	}
}

// InBounds reports whether local coordinates (x,y) lie within the bitmap.
func (b *Bitmap) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// index maps local (x,y) to a row-major index.
func (b *Bitmap) index(x, y int) int {
	return y*b.Width + x
}

// Coordinate converts a row-major index back to local (x,y).
func (b *Bitmap) Coordinate(idx int) (x, y int) {
	return idx % b.Width, idx / b.Width
}

// NeighborOffsets returns the precomputed 4-directional neighbor offsets.
func (b *Bitmap) NeighborOffsets() [][2]int {
	return b.neighborOffsets
}

// Get reports whether local pixel (x,y) is lit.
func (b *Bitmap) Get(x, y int) bool {
	if !b.InBounds(x, y) {
		return false
	}
	return b.Pixels[y][x]
}

// set lights local pixel (x,y).
func (b *Bitmap) set(x, y int) {
	b.Pixels[y][x] = true
}

// worldToLocal translates a world-space lattice coordinate into bitmap-local
// coordinates using the bitmap's origin offset.
func (b *Bitmap) worldToLocal(worldX, worldY int64) (x, y int) {
	return int(worldX - b.OriginX), int(worldY - b.OriginY)
}

// LitCount returns the number of lit pixels in the bitmap.
func (b *Bitmap) LitCount() int {
	n := 0
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.Pixels[y][x] {
				n++
			}
		}
	}
	return n
}
