package refine

import "errors"

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("refine: invalid option supplied")

	// ErrFigureNil is returned if a nil figure pointer is passed to Run.
	ErrFigureNil = errors.New("refine: figure is nil")

	// ErrEmptyFigure is returned when Run is called on a figure with no
	// segments; there is nothing to refine.
	ErrEmptyFigure = errors.New("refine: figure has no segments")

	// ErrStepBudgetExceeded is returned when a single resize backtrack
	// exceeds Options.MaxSteps without converging. It guards against an
	// unbounded descent with no polynomial bound.
	ErrStepBudgetExceeded = errors.New("refine: step budget exceeded")

	// ErrUnimplementedMethod is returned by Run when Options.Method selects
	// a refinement strategy this engine does not implement.
	ErrUnimplementedMethod = errors.New("refine: method not implemented")

	// ErrCancelled is returned when the progress callback requests
	// cancellation via Signal.
	ErrCancelled = errors.New("refine: cancelled by progress callback")
)
