package grid

import "errors"

// Sentinel errors for grid construction and mutation.
var (
	// ErrTooComplex indicates an axis would exceed MaxEdgesPerAxis distinct
	// edges, or the derived displacement would exceed its representable
	// range (d > 10).
	ErrTooComplex = errors.New("grid: axis exceeds MaxEdgesPerAxis")

	// ErrAllocFailure indicates backing storage for edges or the bitset
	// could not be acquired.
	ErrAllocFailure = errors.New("grid: allocation failure")

	// ErrInvalidAABB indicates an AABB violates the strict-ordering
	// invariant x1<x2 && y1<y2 && z1<z2.
	ErrInvalidAABB = errors.New("grid: invalid AABB")

	// ErrBorrowed indicates a mutating operation was attempted on a
	// Borrowed (read-only, statically-shared-bitset) Grid view.
	ErrBorrowed = errors.New("grid: cannot mutate a borrowed view")
)
