package route

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/storenav/floorplan"
	"github.com/katalvlaran/storenav/shoplist"
)

// Sentinel errors for route assembly.
var (
	// ErrNilGrid indicates a nil grid was supplied.
	ErrNilGrid = errors.New("route: grid is nil")
	// ErrUnreachable indicates a leg between two waypoints has no path.
	ErrUnreachable = errors.New("route: waypoint unreachable")
	// ErrDegenerateRoute indicates the assembled path has fewer than two cells.
	ErrDegenerateRoute = errors.New("route: cannot calculate path")
)

// LegError describes the leg that failed. It matches both ErrUnreachable and
// the underlying search error under errors.Is.
type LegError struct {
	Index    int
	From, To floorplan.Point
	Err      error
}

func (e *LegError) Error() string {
	return fmt.Sprintf("route: leg %d %v→%v unreachable: %v", e.Index, e.From, e.To, e.Err)
}

// Unwrap exposes ErrUnreachable and the search error.
func (e *LegError) Unwrap() []error { return []error{ErrUnreachable, e.Err} }

// Route is an assembled walk through the store.
type Route struct {
	// Items is the visiting order.
	Items shoplist.List
	// Waypoints holds the entrance, one navigation point per item and the checkout.
	Waypoints []floorplan.Point
	// Path is the continuous cell sequence from entrance to checkout.
	Path []floorplan.Point
	// LegEnds[i] is the index in Path where leg i reaches Waypoints[i+1].
	// For i < len(Items) that is the arrival at Items[i].
	LegEnds []int
}

// Steps returns the number of moves along Path.
func (r *Route) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// ArrivalIndex returns the Path index at which item i is reached.
func (r *Route) ArrivalIndex(i int) int { return r.LegEnds[i] }
