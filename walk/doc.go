// Package walk enumerates a grid.Grid's region as a set of disjoint
// AABBs, each grown greedily from its origin inside the partition being
// explored. A box is not extended beyond that partition, so an emitted
// box may still be extendable into space covered by another emitted box.
// Re-decomposing the enumerated boxes reproduces the original region.
package walk
