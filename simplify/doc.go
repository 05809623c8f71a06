// Package simplify removes redundant edges from a grid.Grid: edges that
// are neither the leading nor the trailing edge of any occupied cell on
// their axis. Removing them coarsens the cell partition without changing
// which points are inside the region.
package simplify
