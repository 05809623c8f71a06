package ops

import (
	"github.com/halvera/cuboidregion/boolean"
	"github.com/halvera/cuboidregion/grid"
)

// Intersect returns the region of g contained within a.
func Intersect(g *grid.Grid, a grid.AABB) (*grid.Grid, error) {
	return combine(g, a, boolean.AND)
}

// Subtract returns the region of g with a removed.
func Subtract(g *grid.Grid, a grid.AABB) (*grid.Grid, error) {
	return combine(g, a, boolean.SUB)
}

// Union returns the region of g with a added.
func Union(g *grid.Grid, a grid.AABB) (*grid.Grid, error) {
	return combine(g, a, boolean.OR)
}

func combine(g *grid.Grid, a grid.AABB, kind boolean.OpKind) (*grid.Grid, error) {
	view, err := grid.NewBorrowed(a)
	if err != nil {
		return nil, err
	}

	return boolean.Op(g, view, kind)
}
