package tour

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/storenav/floorplan"
	"github.com/katalvlaran/storenav/shoplist"
)

// Sentinel errors for planning.
var (
	// ErrNilGrid indicates a nil grid was supplied.
	ErrNilGrid = errors.New("tour: grid is nil")
	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("tour: invalid option supplied")
)

// Plan is the outcome of Order.
type Plan struct {
	// Ordered lists the reachable items in visiting order.
	Ordered shoplist.List
	// Unreachable lists items with no walkable path, in input order.
	Unreachable shoplist.List
	// Steps is the walking distance from the start through every ordered
	// item, plus the final leg to the end point when one was configured.
	Steps int
}

// Options configures Order.
type Options struct {
	// LocalSearch enables the 2-opt refinement.
	LocalSearch bool
	// MaxIters caps accepted 2-opt moves; 0 means until a local optimum.
	MaxIters int
	// End, when set, is the fixed final stop (usually the checkout) that
	// 2-opt and Steps account for.
	End *floorplan.Point

	err error
}

// Option is a functional option for Order.
type Option func(*Options)

// DefaultOptions returns plain greedy ordering with no end point.
func DefaultOptions() Options {
	return Options{}
}

// WithLocalSearch enables the 2-opt pass after the greedy order.
func WithLocalSearch() Option {
	return func(o *Options) { o.LocalSearch = true }
}

// WithMaxIters caps accepted 2-opt moves (n ≥ 0, 0 = unlimited).
func WithMaxIters(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIters cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIters = n
	}
}

// WithEnd fixes the final stop after the last item.
func WithEnd(p floorplan.Point) Option {
	return func(o *Options) { o.End = &p }
}
