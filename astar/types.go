package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/storenav/floorplan"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates a nil *floorplan.Grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates start or goal lies outside the grid.
	ErrOutOfBounds = fmt.Errorf("astar: %w", floorplan.ErrOutOfBounds)

	// ErrNoPath indicates no traversable route exists between start and goal.
	ErrNoPath = errors.New("astar: no path found")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Options configures a single FindPath call.
//
// MaxCost – paths longer than MaxCost steps are not explored; 0 means no cap.
// OnExpand – called with every cell as it is closed, in expansion order.
type Options struct {
	MaxCost  int
	OnExpand func(p floorplan.Point)

	err error
}

// Option represents a functional option for FindPath.
type Option func(*Options)

// DefaultOptions returns no cost cap and a no-op expansion hook.
func DefaultOptions() Options {
	return Options{
		MaxCost:  0,
		OnExpand: func(floorplan.Point) {},
	}
}

// WithMaxCost limits exploration to paths of at most n steps.
//
//	n > 0:  cap at n
//	n == 0: explicit no cap
//	n < 0:  invalid → ErrOptionViolation
func WithMaxCost(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCost = n
	}
}

// WithOnExpand registers a callback run for each closed cell.
func WithOnExpand(fn func(p floorplan.Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
