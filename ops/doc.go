// Package ops provides AABB-shaped convenience wrappers over the boolean
// engine, for callers who want to combine a Grid with a single raw AABB
// without decomposing it first.
package ops
