// Package geom defines the integer 2D lattice primitives shared by every
// other sxbp package: the four axis-aligned directions, 90° rotations, and
// the direction-to-unit-vector mapping used to walk a figure's polyline.
//
// Everything here is a pure value type. There are no allocations, no
// errors, and no package-level state.
package geom
