// Package figure implements the segment array, lifecycle, and coordinate
// cache a polyline figure is built from.
package figure

import "github.com/saxbospiral/sxbp/geom"

// AnchorDirection and AnchorLength fix segment 0 of every non-blank figure,
// anchoring the polyline so the first input bit's turn is unambiguous.
const (
	AnchorDirection = geom.Up
	AnchorLength    = 3
)

// Segment is one straight, axis-aligned piece of a figure's polyline.
type Segment struct {
	Direction geom.Direction
	Length    uint32
}

// Figure is an ordered, owned array of segments plus the bookkeeping a
// refinement run needs: how many leading segments are finalised, and a
// cumulative, opaque refinement odometer. A Figure exclusively owns its
// segment array and its coordinate cache; there is no shared mutable state
// between two Figure values.
type Figure struct {
	segments     []Segment
	cache        coordinateCache
	solvedCount  int
	secondsSpent float64
	released     bool
}

// Blank returns an empty figure (N=0).
func Blank() *Figure {
	return &Figure{}
}

// FromSegments builds a Figure directly from a pre-built segment slice
// (segments[0] must already be the fixed anchor). It is used internally by
// the encode package and by tests; ownership of segments transfers to the
// returned Figure.
func FromSegments(segments []Segment) (*Figure, error) {
	if len(segments) == 0 {
		return nil, ErrEmptyFigure
	}
	if len(segments) > MaxSegments {
		return nil, ErrCapacityExceeded
	}
	if segments[0].Direction != AnchorDirection || segments[0].Length != AnchorLength {
		return nil, ErrEmptyFigure
	}
	return &Figure{segments: segments}, nil
}

// Len returns the total number of segments N.
func (f *Figure) Len() int {
	return len(f.segments)
}

// SolvedCount returns the number of leading segments whose lengths are
// considered finalised.
func (f *Figure) SolvedCount() int {
	return f.solvedCount
}

// LinesRemaining returns N - SolvedCount, for progress observers.
func (f *Figure) LinesRemaining() int {
	return f.Len() - f.solvedCount
}

// SecondsSpent returns the cumulative, opaque refinement odometer. It has
// no bearing on correctness; callers must not rely on its value.
func (f *Figure) SecondsSpent() float64 {
	return f.secondsSpent
}

// AddSecondsSpent accumulates d onto the refinement odometer.
func (f *Figure) AddSecondsSpent(d float64) {
	f.secondsSpent += d
}

// Segment returns a copy of segment i.
func (f *Figure) Segment(i int) (Segment, error) {
	if f.released {
		return Segment{}, ErrReleased
	}
	if i < 0 || i >= len(f.segments) {
		return Segment{}, ErrIndexOutOfRange
	}
	return f.segments[i], nil
}

// SetLength overwrites segment i's length, invalidating the coordinate
// cache watermark down to i before the write is observed.
func (f *Figure) SetLength(i int, length uint32) error {
	if f.released {
		return ErrReleased
	}
	if i < 0 || i >= len(f.segments) {
		return ErrIndexOutOfRange
	}
	f.cache.invalidateFrom(i)
	f.segments[i].Length = length
	return nil
}

// AdvanceSolved raises SolvedCount to n if n is greater than the current
// value; solvedCount never decreases through this call.
func (f *Figure) AdvanceSolved(n int) {
	if n > f.solvedCount {
		f.solvedCount = n
	}
}

// EnsureCachedThrough extends the coordinate cache so that the endpoint of
// segment k is materialised. It requires k < Len().
func (f *Figure) EnsureCachedThrough(k int) error {
	if f.released {
		return ErrReleased
	}
	if k < 0 || k >= len(f.segments) {
		return ErrIndexOutOfRange
	}
	f.cache.ensureCachedThrough(f.segments, k)
	return nil
}

// CacheWatermark returns the coordinate cache's current validity watermark.
func (f *Figure) CacheWatermark() int {
	return f.cache.watermark
}

// Endpoint returns the cached endpoint vertex of segment i. The cache must
// already cover i (see EnsureCachedThrough).
func (f *Figure) Endpoint(i int) (geom.Vector, error) {
	if i < 0 || i >= len(f.segments) || i >= f.cache.watermark {
		return geom.Vector{}, ErrIndexOutOfRange
	}
	return f.cache.endpoint(i), nil
}

// StartPoint returns the cached start vertex of segment i. The cache must
// already cover i.
func (f *Figure) StartPoint(i int) (geom.Vector, error) {
	if i < 0 || i >= len(f.segments) || i >= f.cache.watermark {
		return geom.Vector{}, ErrIndexOutOfRange
	}
	return f.cache.startpoint(i), nil
}

// SegmentPoints returns the lattice points newly traversed by segment i,
// excluding the turn vertex shared with segment i-1. The cache must already
// cover i.
func (f *Figure) SegmentPoints(i int) ([]geom.Vector, error) {
	if i < 0 || i >= len(f.segments) || i >= f.cache.watermark {
		return nil, ErrIndexOutOfRange
	}
	return f.cache.segmentPoints(i), nil
}

// Clone returns a deep copy of f: an independent segment array and an
// independent (but not necessarily re-walked) coordinate cache, mirroring
// github.com/katalvlaran/lvlath's core.Graph.Clone deep-copy contract.
func (f *Figure) Clone() *Figure {
	segments := make([]Segment, len(f.segments))
	copy(segments, f.segments)
	clone := &Figure{
		segments:     segments,
		solvedCount:  f.solvedCount,
		secondsSpent: f.secondsSpent,
	}
	clone.cache.points = append([]geom.Vector(nil), f.cache.points...)
	clone.cache.segmentEnd = append([]int(nil), f.cache.segmentEnd...)
	clone.cache.watermark = f.cache.watermark
	return clone
}

// Equal reports whether f and o have identical segments, ignoring
// SolvedCount/SecondsSpent bookkeeping.
func (f *Figure) Equal(o *Figure) bool {
	if o == nil || len(f.segments) != len(o.segments) {
		return false
	}
	for i := range f.segments {
		if f.segments[i] != o.segments[i] {
			return false
		}
	}
	return true
}

// Release discards the figure's backing storage. Go's garbage collector
// would reclaim this memory regardless; Release exists so callers have an
// explicit lifecycle operation, the same way core.Graph exposes an
// explicit Clone/CloneEmpty lifecycle even though nothing forces callers
// to use it. After Release, Segment/SetLength/EnsureCachedThrough report
// ErrReleased.
func (f *Figure) Release() {
	f.segments = nil
	f.cache.reset()
	f.solvedCount = 0
	f.released = true
}

// Released reports whether Release has been called on f.
func (f *Figure) Released() bool {
	return f.released
}
