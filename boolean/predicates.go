package boolean

import "github.com/halvera/cuboidregion/grid"

// Equal reports whether l and r represent the same region: identical
// pointers, or no cell differs between them (¬Evaluate(l,r,XOR)).
//
// Complexity: O(1) on the identity fast path, otherwise the cost of
// Evaluate.
func Equal(l, r *grid.Grid) bool {
	if l == r {
		return true
	}

	return !Evaluate(l, r, XOR)
}

// Contains reports whether l covers the entirety of r: no cell of r
// lies outside l (¬Evaluate(l,r,RSUB)).
//
// Complexity: O(1) on the identity fast path, otherwise the cost of
// Evaluate.
func Contains(l, r *grid.Grid) bool {
	if l == r {
		return true
	}

	return !Evaluate(l, r, RSUB)
}

// Intersects reports whether l and r share any cell.
//
// Spec.md §4.4 names an identical-pointers fast path; applied literally
// that would make Intersects(g,g) unconditionally true, which
// contradicts the invariant Intersects(g,g) == !IsEmpty(g) for an empty
// g. The fast path here returns !l.IsEmpty() instead, which matches
// Evaluate(l,r,AND) exactly for l==r while still avoiding the full
// traversal for the common self-intersection check.
//
// Complexity: O(1) on the identity fast path, otherwise the cost of
// Evaluate.
func Intersects(l, r *grid.Grid) bool {
	if l == r {
		return !l.IsEmpty()
	}

	return Evaluate(l, r, AND)
}
