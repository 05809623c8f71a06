// Package face extracts a 2D cross-section of a grid.Grid at a fixed
// coordinate on one axis, encoded as a Grid whose chosen axis has exactly
// two edges bracketing that coordinate.
package face
