// Package raster turns a figure into a bitmap on its translated bounding
// box, plus two connectivity checks (Components and IsSimplePath) that test,
// independently of the collision package, properties the raster of a
// self-avoiding figure has.
//
// Bitmap is adapted from github.com/katalvlaran/lvlath's gridgraph.GridGraph
// (a 2D grid treated as a graph, with precomputed neighbor offsets and a
// BFS-based connected-components scan); here the grid holds ink/no-ink
// pixels instead of arbitrary integer cell values, and connectivity is
// always 4-directional (a rasterized axis-aligned polyline never needs
// diagonal adjacency).
package raster
