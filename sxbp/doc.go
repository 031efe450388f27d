// Package sxbp is the public façade: it wires figure, encode, refine,
// raster and serial together behind a closed Result taxonomy, so callers
// never need to import or errors.Is-match the leaf packages' sentinels
// directly.
package sxbp
