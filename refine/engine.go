package refine

import (
	"github.com/saxbospiral/sxbp/collision"
	"github.com/saxbospiral/sxbp/figure"
	"github.com/saxbospiral/sxbp/heuristic"
)

// Engine holds all refinement state and policy in explicit fields rather
// than captured closure variables, the same shape tsp.bbEngine uses for
// branch-and-bound search. Unlike bbEngine's recursive dfs, Engine.resize
// is iterative: backtracking depth here is unbounded by construction, not
// bounded by a fixed vertex count.
type Engine struct {
	f    *figure.Figure
	opts Options
}

// Run finalises segment lengths for indices [f.SolvedCount(), cap) where
// cap is min(opts.MaxSegments, f.Len()) (or just f.Len() if MaxSegments is
// unset). It runs the two-level backtracking state machine: run is the
// outer loop and resize the inner backtracker.
func Run(f *figure.Figure, opts ...Option) error {
	e, err := newEngine(f, opts...)
	if err != nil {
		return err
	}
	return e.run()
}

func newEngine(f *figure.Figure, opts ...Option) (*Engine, error) {
	if f == nil {
		return nil, ErrFigureNil
	}
	if f.Len() == 0 {
		return nil, ErrEmptyFigure
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Engine{f: f, opts: o}, nil
}

// run is the outer loop: one target index at a time, forward.
func (e *Engine) run() error {
	if e.opts.Method != ShrinkFromEnd {
		return ErrUnimplementedMethod
	}

	upperBound := e.f.Len()
	if e.opts.MaxSegments > 0 && e.opts.MaxSegments < upperBound {
		upperBound = e.opts.MaxSegments
	}

	for i := e.f.SolvedCount(); i < upperBound; i++ {
		if err := e.opts.Ctx.Err(); err != nil {
			return err
		}
		if err := e.resize(i, 1); err != nil {
			return err
		}
		e.f.AdvanceSolved(i + 1)
		if e.opts.Progress(e.f, i, upperBound) == Cancel {
			return ErrCancelled
		}
	}
	return nil
}

// resize is the inner backtracker. It descends toward segment 0 whenever
// the target index collides, lengthening the colliding segment's
// predecessor per the heuristic, and climbs back toward targetIndex once a
// descent step stops colliding.
func (e *Engine) resize(targetIndex int, targetLength uint32) error {
	curIndex := targetIndex
	curLength := targetLength
	steps := 0

	for {
		steps++
		if e.opts.MaxSteps > 0 && steps > e.opts.MaxSteps {
			return ErrStepBudgetExceeded
		}

		if err := e.f.SetLength(curIndex, curLength); err != nil {
			return err
		}
		if err := e.f.EnsureCachedThrough(curIndex); err != nil {
			return err
		}
		collides, collider, err := collision.Predicate(e.f, curIndex)
		if err != nil {
			return err
		}

		switch {
		case collides:
			newLength, err := heuristic.Suggest(e.f, curIndex, collider, e.opts.Threshold)
			if err != nil {
				return err
			}
			curIndex--
			curLength = newLength
		case curIndex != targetIndex:
			curIndex++
			curLength = 1
		default:
			return nil
		}
	}
}
