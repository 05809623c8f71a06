// File: api.go
// Role: thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms live here; construction is in grid.go/view.go, bit
//     access and coordinate mapping are in bisect.go.
//   - Every exported getter documents its complexity.
package grid

// EdgeAt returns the edge value at position p on axis a, and true, or
// (0, false) if p is out of range.
//
// Complexity: O(1).
func (g *Grid) EdgeAt(a Axis, p int) (Scalar, bool) {
	edges := g.edgesOn(a)
	if p < 0 || p >= len(edges) {
		return 0, false
	}

	return edges[p], true
}

// Borrowed reports whether g is a read-only single-AABB view backed by
// the shared static bitset (see NewBorrowed). Mark must never be called
// on such a Grid.
//
// Complexity: O(1).
func (g *Grid) Borrowed() bool {
	return g.k == kindBorrowed
}
