package navigator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/storenav/floorplan"
	"github.com/katalvlaran/storenav/narrate"
	"github.com/katalvlaran/storenav/route"
	"github.com/katalvlaran/storenav/shoplist"
	"github.com/katalvlaran/storenav/tour"
)

// Planner plans routes over one immutable grid.
type Planner struct {
	grid    *floorplan.Grid
	options Options
}

// NewPlanner binds a planner to g.
func NewPlanner(g *floorplan.Grid, opts ...Option) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	return &Planner{grid: g, options: cfg}, nil
}

// Grid returns the planner's grid.
func (p *Planner) Grid() *floorplan.Grid { return p.grid }

// Plan computes the instruction sequence for items. items is not modified.
//
// On failure the returned Result is still usable: its Instructions hold the
// terminal "Cannot calculate path" step. Invalid lists (duplicate ids,
// locations outside the layout) are reported the same way.
func (p *Planner) Plan(items shoplist.List) (*Result, error) {
	g := p.grid
	if len(items) == 0 {
		return &Result{Instructions: narrate.EmptyList(g.Checkout())}, nil
	}
	if err := items.Validate(g); err != nil {
		return p.fail(nil, fmt.Errorf("navigator: %w", err))
	}

	topts := []tour.Option{tour.WithEnd(g.Checkout())}
	if p.options.LocalSearch {
		topts = append(topts, tour.WithLocalSearch())
	}
	plan, err := tour.Order(g, g.Entrance(), items, topts...)
	if err != nil {
		return p.fail(nil, fmt.Errorf("navigator: order items: %w", err))
	}

	r, err := route.Build(g, plan.Ordered)
	if err != nil {
		if errors.Is(err, route.ErrUnreachable) || errors.Is(err, route.ErrDegenerateRoute) {
			err = fmt.Errorf("%w: %w", ErrNoRoute, err)
		}
		return p.fail(plan.Unreachable, err)
	}

	ins, err := narrate.Synthesize(g, r, p.options.Narrate...)
	if err != nil {
		return p.fail(plan.Unreachable, fmt.Errorf("navigator: narrate: %w", err))
	}

	return &Result{
		Items:        r.Items,
		Unreachable:  plan.Unreachable,
		Route:        r,
		Instructions: ins,
	}, nil
}

func (p *Planner) fail(unreachable shoplist.List, err error) (*Result, error) {
	return &Result{
		Unreachable:  unreachable,
		Instructions: narrate.NoRoute(p.grid.Entrance()),
	}, err
}
