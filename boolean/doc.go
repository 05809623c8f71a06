// Package boolean implements the lock-step traversal that powers every
// boolean combination of two grid.Grids: Op (produce a new Grid) and
// Evaluate (test a boolean predicate over all intersections), plus the
// derived predicates Equal, Contains, and Intersects built on top of
// Evaluate.
//
// Both Op and Evaluate share one traversal: a merged, deduplicated edge
// list per axis, walked with a pair of cursors per side that track which
// of the two operands currently "dominates" (is on the near side of) the
// destination coordinate. See engine.go for the cursor algorithm.
package boolean
