package tour

import (
	"errors"

	"github.com/katalvlaran/storenav/astar"
	"github.com/katalvlaran/storenav/floorplan"
	"github.com/katalvlaran/storenav/shoplist"
)

// Order returns the visiting order for items starting at start.
// The input list is never modified.
//
// Errors: ErrNilGrid, ErrOptionViolation, or a non-recoverable astar error
// (for example astar.ErrOutOfBounds for an item outside the grid). A missing
// path is not an error; the item lands in Plan.Unreachable.
func Order(g *floorplan.Grid, start floorplan.Point, items shoplist.List, opts ...Option) (Plan, error) {
	if g == nil {
		return Plan{}, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Plan{}, cfg.err
	}

	var plan Plan
	remaining := items.Clone()
	cur := start
	for len(remaining) > 0 {
		best, bestLen := -1, 0
		kept := remaining[:0]
		for _, it := range remaining {
			n, err := legCells(g, cur, it.NavPoint(g))
			if errors.Is(err, astar.ErrNoPath) {
				plan.Unreachable = append(plan.Unreachable, it)
				continue
			}
			if err != nil {
				return Plan{}, err
			}
			if best < 0 || n < bestLen {
				best, bestLen = len(kept), n
			}
			kept = append(kept, it)
		}
		remaining = kept
		if best < 0 {
			break
		}
		next := remaining[best]
		plan.Ordered = append(plan.Ordered, next)
		plan.Steps += bestLen - 1
		cur = next.NavPoint(g)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	if cfg.End != nil {
		n, err := legCells(g, cur, *cfg.End)
		if err != nil {
			return Plan{}, err
		}
		plan.Steps += n - 1
	}
	if cfg.LocalSearch && len(plan.Ordered) >= 2 {
		return improve(g, start, plan, cfg)
	}

	return plan, nil
}

// legCells is the path length in cells between a and b, including both ends.
// Cells in different components are reported as astar.ErrNoPath without a search.
func legCells(g *floorplan.Grid, a, b floorplan.Point) (int, error) {
	if g.InBounds(a) && g.InBounds(b) && !g.Connected(a, b) && a != b {
		return 0, astar.ErrNoPath
	}
	return astar.Distance(g, a, b)
}
