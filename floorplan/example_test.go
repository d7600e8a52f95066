package floorplan_test

import (
	"fmt"

	"github.com/katalvlaran/storenav/floorplan"
)

// ExampleGrid_NavPoint shows where a shopper stands to reach an aisle section.
func ExampleGrid_NavPoint() {
	g := floorplan.Reference()

	for _, aisle := range []int{1, 6} {
		p := g.NavPoint(aisle, 2)
		fmt.Printf("aisle %d: shelf x=%d, stand at %v (%s)\n", aisle, g.ShelfX(aisle), p, g.MustAt(p))
	}

	// Output:
	// aisle 1: shelf x=1, stand at (2,2) (open)
	// aisle 6: shelf x=11, stand at (12,2) (open)
}

// ExampleParse builds a tiny layout from characters.
func ExampleParse() {
	g, err := floorplan.Parse([]string{
		"E.#.",
		"...C",
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Width(), g.Height(), g.Entrance(), g.Checkout())
	fmt.Println(g)

	// Output:
	// 4 2 (0,0) (3,1)
	// E.#.
	// ...C
}
