package decompose_test

import (
	"fmt"

	"github.com/halvera/cuboidregion/decompose"
	"github.com/halvera/cuboidregion/grid"
)

// ExampleFromAABBs decomposes two adjacent boxes and inspects the
// resulting vertex occupancy at their shared corner.
func ExampleFromAABBs() {
	g, _ := decompose.FromAABBs([]grid.AABB{
		{X1: 0, Y1: 0, Z1: 0, X2: 1, Y2: 1, Z2: 1},
		{X1: 1, Y1: 0, Z1: 0, X2: 2, Y2: 1, Z2: 1},
	})

	fmt.Println(g.IsAABBOrigin(0, 0, 0))
	fmt.Println(g.IsAABBOrigin(1, 0, 0))
	fmt.Println(g.IsAABBOrigin(2, 0, 0))
	// Output:
	// true
	// true
	// false
}
