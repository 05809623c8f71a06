// Package decompose builds a grid.Grid from a collection of AABBs: it
// merges every box's coordinates into per-axis sorted edge arrays and
// marks the occupancy bit of every vertex that originates a cell
// contained in some input AABB.
//
// This is the only place a list of raw AABBs is ingested into the packed
// representation; grid.NewBorrowed (used by ops) wraps a single AABB as a
// read-only view, and the other packages (boolean, simplify, walk, face)
// operate purely on an existing *grid.Grid.
package decompose
