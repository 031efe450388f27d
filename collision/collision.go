package collision

import (
	"github.com/saxbospiral/sxbp/figure"
	"github.com/saxbospiral/sxbp/geom"
)

// minSegmentsForCollision is the smallest segment count under which a
// self-intersection is geometrically possible.
const minSegmentsForCollision = 4

// Predicate decides whether the figure self-intersects after segment last
// was placed. It returns (false, -1, nil) when there is no collision, or
// (true, collider, nil) naming the lowest-indexed earlier segment that
// shares a lattice point with last. The caller must have already extended
// f's coordinate cache through last (Predicate does so defensively, as the
// call is a cheap no-op when already satisfied).
//
// Each segment is treated as the closed set of lattice points it traverses,
// inclusive of endpoints; the turn vertex two consecutive segments share is
// never reported as a collision because figure.SegmentPoints already
// excludes it from the later segment's own point set.
func Predicate(f *figure.Figure, last int) (collides bool, collider int, err error) {
	if last < 0 || last >= f.Len() {
		return false, -1, ErrIndexOutOfRange
	}
	if f.Len() < minSegmentsForCollision {
		return false, -1, nil
	}
	if err := f.EnsureCachedThrough(last); err != nil {
		return false, -1, err
	}

	owner := make(map[geom.Vector]int, last*2)
	for i := 0; i < last; i++ {
		pts, err := f.SegmentPoints(i)
		if err != nil {
			return false, -1, err
		}
		for _, p := range pts {
			if _, taken := owner[p]; !taken {
				owner[p] = i
			}
		}
	}

	lastPts, err := f.SegmentPoints(last)
	if err != nil {
		return false, -1, err
	}

	lowest := -1
	for _, p := range lastPts {
		if i, taken := owner[p]; taken {
			if lowest == -1 || i < lowest {
				lowest = i
			}
		}
	}
	if lowest == -1 {
		return false, -1, nil
	}
	return true, lowest, nil
}
