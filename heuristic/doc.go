// Package heuristic implements the length-correction heuristic: given a
// collision between the most recently placed segment and an earlier
// "rigid" segment, propose a new length for the immediately preceding
// segment that is likely to resolve the collision in one step. The
// proposal is re-validated by the refinement engine; it is a heuristic,
// not a guarantee.
package heuristic
