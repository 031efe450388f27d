package raster

// Components returns the connected components (under 4-directional
// adjacency) of the bitmap's lit pixels, each expressed as a list of local
// (x,y) coordinates. A self-avoiding polyline's raster is always a single
// component; Components checks this independently of collision.Predicate.
//
// Adapted from gridgraph.ConnectedComponents's flood-fill shape, simplified
// to a single "ink" value instead of grouping by arbitrary cell value.
func (b *Bitmap) Components() [][][2]int {
	total := b.Width * b.Height
	visited := make([]bool, total)
	var components [][][2]int

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if !b.Pixels[y][x] {
				continue
			}
			startIdx := b.index(x, y)
			if visited[startIdx] {
				continue
			}
			queue := []int{startIdx}
			visited[startIdx] = true
			var comp [][2]int

			for qi := 0; qi < len(queue); qi++ {
				idx := queue[qi]
				x0, y0 := b.Coordinate(idx)
				comp = append(comp, [2]int{x0, y0})

				for _, d := range b.neighborOffsets {
					nx, ny := x0+d[0], y0+d[1]
					if !b.InBounds(nx, ny) || !b.Pixels[ny][nx] {
						continue
					}
					nIdx := b.index(nx, ny)
					if !visited[nIdx] {
						visited[nIdx] = true
						queue = append(queue, nIdx)
					}
				}
			}
			components = append(components, comp)
		}
	}
	return components
}
