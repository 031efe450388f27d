package heuristic

import (
	"github.com/saxbospiral/sxbp/figure"
	"github.com/saxbospiral/sxbp/geom"
)

// Suggest proposes a new length for segment last-1 ("previous") given that
// the figure currently collides at segment last ("i") against the earlier,
// rigid segment collider ("c"). The cache must already cover last and
// collider. threshold is the perfection threshold T; 0 disables rule 1.
//
// Suggest never reports that there is no collision; callers must only
// invoke it after collision.Predicate has reported one.
func Suggest(f *figure.Figure, last, collider, threshold int) (uint32, error) {
	prevIndex := last - 1
	if prevIndex < 0 {
		return 0, ErrIndexOutOfRange
	}

	p, err := f.Segment(prevIndex)
	if err != nil {
		return 0, err
	}
	r, err := f.Segment(collider)
	if err != nil {
		return 0, err
	}

	// Rule 1: perfection threshold.
	if threshold > 0 {
		cur, err := f.Segment(last)
		if err != nil {
			return 0, err
		}
		if uint64(cur.Length) > uint64(threshold) {
			return p.Length + 1, nil
		}
	}

	// Rule 2: non-parallel guard.
	if !geom.Parallel(p.Direction, r.Direction) {
		return p.Length + 1, nil
	}

	// Rule 3: parallel case. The eight same-axis (p.dir, r.dir) combinations
	// all reduce to one signed-displacement formula once the axis and the
	// relevant endpoint of r are chosen correctly.
	pa, err := f.StartPoint(prevIndex)
	if err != nil {
		return 0, err
	}
	ra, err := f.StartPoint(collider)
	if err != nil {
		return 0, err
	}
	rb, err := f.Endpoint(collider)
	if err != nil {
		return 0, err
	}

	target := rb
	if p.Direction == r.Direction {
		target = ra
	}

	var delta int64
	if geom.Vertical(p.Direction) {
		delta = target.Y - pa.Y
	} else {
		delta = target.X - pa.X
	}
	if delta < 0 {
		delta = -delta
	}

	return uint32(delta) + r.Length + 1, nil
}
