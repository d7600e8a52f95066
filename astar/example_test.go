package astar_test

import (
	"fmt"

	"github.com/katalvlaran/storenav/astar"
	"github.com/katalvlaran/storenav/floorplan"
)

// ExampleFindPath routes around a shelf block.
func ExampleFindPath() {
	g, _ := floorplan.Parse([]string{
		"E.#..",
		"..#..",
		"....C",
	})

	path, err := astar.FindPath(g, g.Entrance(), floorplan.Pt(3, 0))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(path)-1, "steps:", path)

	_, err = astar.FindPath(g, g.Entrance(), floorplan.Pt(2, 0))
	fmt.Println(err != nil)

	// Output:
	// 7 steps: [(0,0) (1,0) (1,1) (1,2) (2,2) (3,2) (3,1) (3,0)]
	// true
}
