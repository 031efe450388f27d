package encode

import (
	"github.com/saxbospiral/sxbp/figure"
	"github.com/saxbospiral/sxbp/geom"
)

// Encode builds an unrefined figure from data: N = 1 + 8*len(data) segments,
// segment 0 fixed at (UP, 3), and one unit-length segment per input bit
// read MSB-first. A 0 bit turns clockwise (right); a 1 bit turns
// anti-clockwise (left); each turn composes onto the previous segment's
// direction. Segment 0 is marked solved, matching begin_figure's contract
// that the anchor is never touched by refinement.
func Encode(data []byte) (*figure.Figure, error) {
	n := 1 + 8*len(data)
	if n > figure.MaxSegments {
		return nil, ErrCapacityExceeded
	}

	segments := make([]figure.Segment, n)
	segments[0] = figure.Segment{Direction: figure.AnchorDirection, Length: figure.AnchorLength}

	dir := geom.Direction(figure.AnchorDirection)
	idx := 1
	for _, b := range data {
		for bit := 7; bit >= 0; bit-- {
			if (b>>uint(bit))&1 == 1 {
				dir = geom.Turn(dir, geom.LeftTurn)
			} else {
				dir = geom.Turn(dir, geom.RightTurn)
			}
			segments[idx] = figure.Segment{Direction: dir, Length: 1}
			idx++
		}
	}

	f, err := figure.FromSegments(segments)
	if err != nil {
		return nil, err
	}
	f.AdvanceSolved(1)
	return f, nil
}
