package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/storenav/floorplan"
)

// walker encapsulates mutable BFS state.
type walker struct {
	grid  *floorplan.Grid
	opts  Options
	ctx   context.Context
	queue []int
	res   *Result
}

// BFS runs breadth-first search on g starting from start, applying any number
// of functional Options. Neighbours are generated in floorplan.Conn4 order.
// Returns ErrGridNil, ErrOptionViolation or ErrStartNotWalkable for invalid
// input, the context error on cancellation, or any OnVisit hook error.
func BFS(g *floorplan.Grid, start floorplan.Point, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Walkable(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotWalkable, start)
	}

	n := g.Len()
	w := &walker{
		grid:  g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &Result{
			Start: start,
			Order: make([]floorplan.Point, 0, n),
			Depth: make([]int, n),
			grid:  g,
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
	}

	w.enqueue(g.Index(start), 0)

	return w.res, w.loop()
}

// enqueue marks idx reached at depth d.
func (w *walker) enqueue(idx, d int) {
	w.res.Depth[idx] = d
	w.queue = append(w.queue, idx)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		u := w.queue[head]
		up := w.grid.Coordinate(u)
		d := w.res.Depth[u]
		w.res.Order = append(w.res.Order, up)
		if err := w.opts.OnVisit(up, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", up, err)
		}
		for _, off := range floorplan.Conn4 {
			vp := up.Add(off)
			if !w.grid.Walkable(vp) {
				continue
			}
			v := w.grid.Index(vp)
			if w.res.Depth[v] < 0 {
				w.enqueue(v, d+1)
			}
		}
	}
	return nil
}
