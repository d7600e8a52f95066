// Package bfs provides tunable options and error definitions
// for breadth-first search over a floorplan.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/storenav/floorplan"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrStartNotWalkable is returned when the start cell is a shelf or out of bounds.
	ErrStartNotWalkable = errors.New("bfs: start cell is not walkable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. a nil context), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(p floorplan.Point, depth int) error

	err error
}

// DefaultOptions returns Options with a background context and a no-op
// visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(floorplan.Point, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation. A nil ctx is an
// ErrOptionViolation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(p floorplan.Point, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS traversal over a grid of W×H cells.
//   - Order: cells in visit sequence.
//   - Depth: row-major steps from the start, -1 where unreached.
type Result struct {
	Start floorplan.Point
	Order []floorplan.Point
	Depth []int

	grid *floorplan.Grid
}

// Reached reports whether p was visited.
func (r *Result) Reached(p floorplan.Point) bool {
	return r.grid.InBounds(p) && r.Depth[r.grid.Index(p)] >= 0
}

// DistanceTo returns the step count from the start to p.
func (r *Result) DistanceTo(p floorplan.Point) (int, bool) {
	if !r.Reached(p) {
		return 0, false
	}
	return r.Depth[r.grid.Index(p)], true
}
