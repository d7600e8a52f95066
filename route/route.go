package route

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/storenav/astar"
	"github.com/katalvlaran/storenav/floorplan"
	"github.com/katalvlaran/storenav/shoplist"
)

// Build assembles the route entrance → ordered items → checkout on g.
// ordered is copied; the caller's list is not retained.
func Build(g *floorplan.Grid, ordered shoplist.List) (*Route, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	waypoints := make([]floorplan.Point, 0, len(ordered)+2)
	waypoints = append(waypoints, g.Entrance())
	for _, it := range ordered {
		waypoints = append(waypoints, it.NavPoint(g))
	}
	waypoints = append(waypoints, g.Checkout())

	path, ends, err := Connect(g, waypoints)
	if err != nil {
		return nil, err
	}

	return &Route{
		Items:     ordered.Clone(),
		Waypoints: waypoints,
		Path:      path,
		LegEnds:   ends,
	}, nil
}

// Connect joins consecutive waypoints with shortest paths. It returns the
// concatenated path and, per leg, the index in that path where the leg ends.
func Connect(g *floorplan.Grid, waypoints []floorplan.Point) ([]floorplan.Point, []int, error) {
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	if len(waypoints) < 2 {
		return nil, nil, fmt.Errorf("%w: %d waypoint(s)", ErrDegenerateRoute, len(waypoints))
	}

	var (
		path []floorplan.Point
		ends = make([]int, 0, len(waypoints)-1)
	)
	for i := 1; i < len(waypoints); i++ {
		from, to := waypoints[i-1], waypoints[i]
		leg, err := astar.FindPath(g, from, to)
		switch {
		case errors.Is(err, astar.ErrNoPath):
			return nil, nil, &LegError{Index: i - 1, From: from, To: to, Err: err}
		case err != nil:
			return nil, nil, fmt.Errorf("route: leg %d: %w", i-1, err)
		}
		if i > 1 {
			leg = leg[1:]
		}
		path = append(path, leg...)
		ends = append(ends, len(path)-1)
	}
	if len(path) < 2 {
		return nil, nil, fmt.Errorf("%w: %d cell(s)", ErrDegenerateRoute, len(path))
	}

	return path, ends, nil
}
