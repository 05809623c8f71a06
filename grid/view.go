// File: view.go
// Role: read-only Borrowed view over a single AABB.
// Determinism:
//   - A Borrowed Grid always decomposes to exactly two edges per axis and
//     exactly one marked vertex, at position (0,0,0).
// Concurrency:
//   - Borrowed Grids share one process-lifetime bitset; Mark must never
//     be called on one (it panics), and Release is a no-op.
package grid

// sharedBorrowedBits is the process-lifetime, read-only bitset shared by
// every Borrowed Grid: a single AABB decomposes into a 2×2×2 vertex
// lattice (d=1) with exactly one marked origin, at index 0 — bit 0 of
// word 0. Every Borrowed view points at this same backing array, so no
// per-view allocation is needed and no Borrowed Grid may ever write to
// it.
var sharedBorrowedBits = [1]uint32{1}

// NewBorrowed returns a lightweight, read-only Grid view over a single
// AABB: two edges per axis (the AABB's min and max corners) and a
// statically-shared bitset. The result must never be passed to Mark;
// Release on it is a no-op. NewBorrowed is the backing primitive for
// ops.Intersect/Subtract/Union's "throwaway single-AABB Grid".
//
// Complexity: O(1); no heap allocation of the bitset.
func NewBorrowed(a AABB) (*Grid, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	buf := [6]Scalar{a.X1, a.X2, a.Y1, a.Y2, a.Z1, a.Z2}

	return &Grid{
		X:         buf[0:2],
		Y:         buf[2:4],
		Z:         buf[4:6],
		d:         1,
		k:         kindBorrowed,
		bits:      sharedBorrowedBits[:],
		borrowBuf: &buf,
	}, nil
}
