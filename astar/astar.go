package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/storenav/floorplan"
)

// FindPath returns a shortest 4-connected path from start to goal on g,
// inclusive of both endpoints. If start == goal the result is [start].
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrOptionViolation).
//  3. start and goal must be in bounds (ErrOutOfBounds).
//
// ErrNoPath is returned when the goal cannot be reached, including when the
// goal is a shelf or when MaxCost cuts the search short.
func FindPath(g *floorplan.Grid, start, goal floorplan.Point, opts ...Option) ([]floorplan.Point, error) {
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
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrOutOfBounds, goal)
	}
	if start == goal {
		return []floorplan.Point{start}, nil
	}

	r := newRunner(g, goal, cfg)
	r.push(start, 0, nil)
	last := r.process()
	if last == nil {
		return nil, fmt.Errorf("%w: %v → %v", ErrNoPath, start, goal)
	}

	return reconstruct(last), nil
}

// Distance returns the number of cells in the shortest path from start to
// goal, counting both endpoints (so Distance(p, p) == 1).
func Distance(g *floorplan.Grid, start, goal floorplan.Point, opts ...Option) (int, error) {
	path, err := FindPath(g, start, goal, opts...)
	if err != nil {
		return 0, err
	}
	return len(path), nil
}

// node is one search state; nodes never outlive the FindPath call.
type node struct {
	p      floorplan.Point
	g      int // steps from start
	h      int // Manhattan estimate to goal
	f      int // g + h
	parent *node
	seq    int // insertion order, breaks f ties
}

// runner holds the mutable state for a single search.
type runner struct {
	grid    *floorplan.Grid
	goal    floorplan.Point
	options Options
	closed  []bool
	bestG   []int // best g currently in the frontier per cell, -1 if none
	pq      nodePQ
	seq     int
}

func newRunner(g *floorplan.Grid, goal floorplan.Point, cfg Options) *runner {
	n := g.Len()
	r := &runner{
		grid:    g,
		goal:    goal,
		options: cfg,
		closed:  make([]bool, n),
		bestG:   make([]int, n),
		pq:      make(nodePQ, 0, n),
	}
	for i := range r.bestG {
		r.bestG[i] = -1
	}
	heap.Init(&r.pq)
	return r
}

// push records p in the frontier with cost gCost.
func (r *runner) push(p floorplan.Point, gCost int, parent *node) {
	h := p.Manhattan(r.goal)
	heap.Push(&r.pq, &node{
		p:      p,
		g:      gCost,
		h:      h,
		f:      gCost + h,
		parent: parent,
		seq:    r.seq,
	})
	r.seq++
	r.bestG[r.grid.Index(p)] = gCost
}

// process pops the lowest-f node until the goal is popped or the frontier is
// empty. It returns the goal node or nil.
func (r *runner) process() *node {
	for r.pq.Len() > 0 {
		cur := heap.Pop(&r.pq).(*node)
		ci := r.grid.Index(cur.p)
		if r.closed[ci] {
			continue // stale duplicate
		}
		if cur.p == r.goal {
			return cur
		}
		r.closed[ci] = true
		r.options.OnExpand(cur.p)
		r.expand(cur)
	}
	return nil
}

// expand generates the walkable 4-neighbours of cur.
func (r *runner) expand(cur *node) {
	ng := cur.g + 1
	if r.options.MaxCost > 0 && ng > r.options.MaxCost {
		return
	}
	for _, d := range floorplan.Conn4 {
		np := cur.p.Add(d)
		if !r.grid.Walkable(np) {
			continue
		}
		ni := r.grid.Index(np)
		if r.closed[ni] {
			continue
		}
		if best := r.bestG[ni]; best >= 0 && best <= ng {
			continue
		}
		r.push(np, ng, cur)
	}
}

// reconstruct follows parent links from the goal back to the start.
func reconstruct(last *node) []floorplan.Point {
	n := last.g + 1
	path := make([]floorplan.Point, n)
	for at := last; at != nil; at = at.parent {
		n--
		path[n] = at.p
	}
	return path
}

// nodePQ is a min-heap of *node ordered by f, then by insertion order.
type nodePQ []*node

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*node)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
