package tour

import (
	"github.com/katalvlaran/storenav/floorplan"
	"github.com/katalvlaran/storenav/shoplist"
)

// Cost returns the walking steps of visiting ordered from start and then
// walking to end. It is the number of moves, not cells: a route of k cells
// costs k−1.
//
// Contract:
//   - g must be non-nil (ErrNilGrid).
//   - Every leg must be walkable; otherwise the astar error is returned.
func Cost(g *floorplan.Grid, start floorplan.Point, ordered shoplist.List, end floorplan.Point) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	total := 0
	cur := start
	for _, it := range ordered {
		next := it.NavPoint(g)
		cells, err := legCells(g, cur, next)
		if err != nil {
			return 0, err
		}
		total += cells - 1
		cur = next
	}
	cells, err := legCells(g, cur, end)
	if err != nil {
		return 0, err
	}

	return total + cells - 1, nil
}
