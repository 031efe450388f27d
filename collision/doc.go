// Package collision implements the self-avoidance predicate of spec
// component E: given the most recently placed segment, decide whether it
// shares a lattice point with any earlier segment, and if so name the
// lowest-indexed offender.
package collision
