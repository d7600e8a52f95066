package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/storenav/bfs"
	"github.com/katalvlaran/storenav/floorplan"
)

// ExampleBFS measures walking distances from the entrance of the demo store.
func ExampleBFS() {
	g := floorplan.Reference()
	res, err := bfs.BFS(g, g.Entrance())
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, aisle := range []int{1, 3, 6} {
		d, _ := res.DistanceTo(g.NavPoint(aisle, 1))
		fmt.Printf("aisle %d section 1: %d steps\n", aisle, d)
	}

	// Output:
	// aisle 1 section 1: 11 steps
	// aisle 3 section 1: 15 steps
	// aisle 6 section 1: 21 steps
}
