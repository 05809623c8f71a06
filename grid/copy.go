package grid

// Copy returns a deep, Owned duplicate of src: identical edges on every
// axis and an independently-allocated bitset with the same bits set.
// Copy never aliases src's backing buffer, so mutating the result never
// affects src.
//
// Per invariant 3 (equivalent Grids over the same edges have identical
// bitsets) and the testable property "copy(g) is equal to g", Copy(g)
// always decomposes to the same region as g.
//
// Complexity: O(nx+ny+nz) for edges, O(len(bits)) for the bitset.
func Copy(src *Grid) (*Grid, error) {
	dst, err := NewOwned(src.X, src.Y, src.Z)
	if err != nil {
		return nil, err
	}
	copy(dst.bits, src.bits)

	return dst, nil
}
