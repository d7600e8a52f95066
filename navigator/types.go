package navigator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/storenav/narrate"
	"github.com/katalvlaran/storenav/route"
	"github.com/katalvlaran/storenav/shoplist"
)

// Sentinel errors for planning and sessions.
var (
	// ErrNilGrid indicates a nil grid was supplied.
	ErrNilGrid = errors.New("navigator: grid is nil")
	// ErrNoRoute indicates the route could not be assembled.
	ErrNoRoute = errors.New("navigator: cannot calculate path")
	// ErrNotScanning indicates Scan was called away from a scan instruction.
	ErrNotScanning = errors.New("navigator: current instruction is not a scan")
	// ErrStale indicates the session moved while a scan was being confirmed.
	ErrStale = errors.New("navigator: session moved during scan")
)

// Result is the output of one planning run.
type Result struct {
	// Items is the visiting order.
	Items shoplist.List
	// Unreachable lists items left out of the tour.
	Unreachable shoplist.List
	// Route is nil for an empty list or when no route exists.
	Route *route.Route
	// Instructions is never empty.
	Instructions []narrate.Instruction
}

// Steps returns the walking distance of the route in cells moved.
func (r *Result) Steps() int {
	if r.Route == nil {
		return 0
	}
	return r.Route.Steps()
}

// Options configures a Planner.
type Options struct {
	// LocalSearch refines the greedy visiting order with 2-opt.
	LocalSearch bool
	// Narrate is passed to narrate.Synthesize.
	Narrate []narrate.Option

	err error
}

// Option is a functional option for NewPlanner.
type Option func(*Options)

// DefaultOptions returns greedy ordering with default narration.
func DefaultOptions() Options {
	return Options{}
}

// WithLocalSearch enables 2-opt refinement of the visiting order.
func WithLocalSearch(on bool) Option {
	return func(o *Options) { o.LocalSearch = on }
}

// WithDistanceScale renders straight runs in a display unit.
func WithDistanceScale(mult float64, unit string) Option {
	return func(o *Options) {
		if !(mult > 0) || unit == "" {
			o.err = fmt.Errorf("%w: distance scale %g %q", narrate.ErrOptionViolation, mult, unit)
			return
		}
		o.Narrate = append(o.Narrate, narrate.WithDistanceScale(mult, unit))
	}
}
