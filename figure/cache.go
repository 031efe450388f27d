package figure

import "github.com/saxbospiral/sxbp/geom"

// coordinateCache lazily materialises the lattice points traversed by a
// Figure's segments. It stores every unit-step vertex (not merely segment
// endpoints), so that collision can treat each segment as its own closed
// point range without re-walking the geometry.
//
// points[0] is always the figure's anchor (0,0), present once the cache has
// been touched at all. segmentEnd[i] is the index into points of segment
// i's endpoint vertex; segment i's own points (excluding the turn vertex it
// shares with segment i-1) are points[segmentEnd[i-1]+1 : segmentEnd[i]+1].
//
// watermark is the number of segments whose endpoint is currently valid;
// the cache is coherent for segment indices [0, watermark).
type coordinateCache struct {
	points     []geom.Vector
	segmentEnd []int
	watermark  int
}

// reset discards all cached state, returning the cache to its pristine,
// untouched condition (as a freshly blanked Figure has).
func (c *coordinateCache) reset() {
	c.points = nil
	c.segmentEnd = nil
	c.watermark = 0
}

// invalidateFrom clamps the watermark down to i and discards any cached
// points beyond the new watermark: any write to segment i's direction or
// length must execute this before the write becomes observable.
func (c *coordinateCache) invalidateFrom(i int) {
	if i >= c.watermark {
		return
	}
	c.watermark = i
	if i == 0 {
		c.points = c.points[:0]
		c.segmentEnd = c.segmentEnd[:0]
		return
	}
	c.segmentEnd = c.segmentEnd[:i]
	c.points = c.points[:c.segmentEnd[i-1]+1]
}

// ensureCachedThrough extends the cache so that the endpoint of segment k
// (vertex k+1) is materialised. It is a no-op if the watermark already
// covers k. segments must have length > k.
func (c *coordinateCache) ensureCachedThrough(segments []Segment, k int) {
	if c.watermark >= k+1 {
		return
	}
	if len(c.points) == 0 {
		c.points = append(c.points, geom.Vector{X: 0, Y: 0})
	}
	cur := c.points[len(c.points)-1]
	for i := c.watermark; i <= k; i++ {
		seg := segments[i]
		step := geom.UnitVector(seg.Direction)
		for n := uint32(0); n < seg.Length; n++ {
			cur = cur.Add(step)
			c.points = append(c.points, cur)
		}
		c.segmentEnd = append(c.segmentEnd, len(c.points)-1)
	}
	c.watermark = k + 1
}

// endpoint returns the cached endpoint vertex of segment i. The caller
// must have ensured the cache covers i.
func (c *coordinateCache) endpoint(i int) geom.Vector {
	return c.points[c.segmentEnd[i]]
}

// startpoint returns the cached start vertex of segment i (the origin for
// segment 0, otherwise the previous segment's endpoint).
func (c *coordinateCache) startpoint(i int) geom.Vector {
	if i == 0 {
		return c.points[0]
	}
	return c.points[c.segmentEnd[i-1]]
}

// segmentPoints returns the lattice points owned by segment i: its own
// traversal, excluding the turn vertex it shares with segment i-1 (which
// belongs to segment i-1 instead). Segment 0 has no predecessor, so its
// range includes the figure's anchor point at the origin. A segment whose
// length collapses to zero (only possible transiently during refinement)
// traverses no new points and returns nil. The caller must have ensured
// the cache covers i.
func (c *coordinateCache) segmentPoints(i int) []geom.Vector {
	lo := 0
	if i > 0 {
		lo = c.segmentEnd[i-1] + 1
	}
	hi := c.segmentEnd[i]
	if lo > hi {
		return nil
	}
	return c.points[lo : hi+1]
}
