package refine

import (
	"context"
	"fmt"

	"github.com/saxbospiral/sxbp/figure"
)

// Method selects which refinement strategy the engine runs.
type Method int

const (
	// ShrinkFromEnd is the supported strategy: an outer loop advances
	// target indices forward while the inner backtracker resolves each
	// collision by lengthening backward from the target.
	ShrinkFromEnd Method = iota

	// GrowFromStart names an alternate strategy referenced only by name in
	// the original material this package was derived from; its algorithm
	// was never documented, so Run reports ErrUnimplementedMethod rather
	// than guessing at one.
	GrowFromStart
)

// Signal is returned by a ProgressFunc to tell the engine whether to keep
// going after an outer-loop index has been finalised.
type Signal int

const (
	// Continue lets the outer loop proceed to the next index.
	Continue Signal = iota

	// Cancel stops the engine immediately; Run returns ErrCancelled and
	// solved_count remains at whatever value was last successfully reached.
	Cancel
)

// ProgressFunc observes engine progress after each outer-loop index is
// finalised. index is the index just solved; cap is the outer loop's upper
// bound. Returning Cancel stops refinement early.
type ProgressFunc func(f *figure.Figure, index, cap int) Signal

// Option configures the engine via functional arguments. An invalid Option
// is recorded internally and surfaced as ErrOptionViolation when Run is
// invoked.
type Option func(*Options)

// Options holds the tunables of a single refine call.
type Options struct {
	// Threshold is the perfection threshold T passed through to the
	// length-suggestion heuristic (0 disables it).
	Threshold int

	// MaxSegments caps the outer loop's target index at
	// min(MaxSegments, figure.Len()). 0 means "no extra cap" (use Len()).
	MaxSegments int

	// MaxSteps bounds the inner backtracker's iteration count per
	// outer-loop index; every length write counts, whether it descends,
	// climbs back or completes the index. 0 disables the budget (not recommended outside tests: descent
	// has no proven polynomial bound).
	MaxSteps int

	// Method selects the refinement strategy.
	Method Method

	// Progress is invoked after each outer-loop index is finalised.
	Progress ProgressFunc

	// Ctx allows external cancellation via context.
	Ctx context.Context

	err error
}

// DefaultOptions returns the engine's defaults: no threshold, no segment
// cap, no step budget, ShrinkFromEnd, a no-op progress callback, and
// context.Background().
func DefaultOptions() Options {
	return Options{
		Threshold:   0,
		MaxSegments: 0,
		MaxSteps:    0,
		Method:      ShrinkFromEnd,
		Progress:    func(*figure.Figure, int, int) Signal { return Continue },
		Ctx:         context.Background(),
		err:         nil,
	}
}

// WithThreshold sets the perfection threshold T. Negative values are
// invalid.
func WithThreshold(t int) Option {
	return func(o *Options) {
		if t < 0 {
			o.err = fmt.Errorf("%w: Threshold cannot be negative (%d)", ErrOptionViolation, t)
			return
		}
		o.Threshold = t
	}
}

// WithMaxSegments caps the outer loop's target index at min(n, figure.Len()),
// so a Run call finalises no index at or past n. Negative values are invalid; 0 explicitly means "no extra cap".
func WithMaxSegments(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSegments cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSegments = n
	}
}

// WithMaxSteps bounds the inner backtracker's iteration count per
// outer-loop index (see Options.MaxSteps). Negative
// values are invalid; 0 explicitly disables the budget.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithMethod selects the refinement strategy.
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithProgress registers a progress observer; a nil fn is ignored.
func WithProgress(fn ProgressFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Progress = fn
		}
	}
}

// WithContext sets a custom context for external cancellation; a nil ctx is
// ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
