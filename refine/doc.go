// Package refine implements the two-level backtracking state machine that
// finalises a figure's segment lengths one at a time, resolving
// self-intersections by repeatedly lengthening the immediately preceding
// segment under guidance from the heuristic package.
package refine
