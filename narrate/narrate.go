package narrate

import (
	"fmt"

	"github.com/katalvlaran/storenav/floorplan"
	"github.com/katalvlaran/storenav/route"
	"github.com/katalvlaran/storenav/shoplist"
)

// Synthesize produces the instruction sequence for r on g.
//
// g is needed to locate each item's shelf column. Items are matched to the
// path by the leg ends recorded in r; several items sharing a navigation
// point each get their own turn and scan, in visiting order.
func Synthesize(g *floorplan.Grid, r *route.Route, opts ...Option) ([]Instruction, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if r == nil {
		return nil, ErrNilRoute
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if len(r.Path) == 0 {
		return nil, route.ErrDegenerateRoute
	}
	if len(r.LegEnds) < len(r.Items)+1 {
		return nil, fmt.Errorf("%w: %d for %d item(s)", ErrLegEnds, len(r.LegEnds), len(r.Items))
	}
	for _, end := range r.LegEnds {
		if end < 0 || end >= len(r.Path) {
			return nil, fmt.Errorf("%w: leg end %d outside a %d-cell path", ErrLegEnds, end, len(r.Path))
		}
	}

	s := &synth{
		grid:     g,
		path:     r.Path,
		options:  cfg,
		arrivals: make(map[int][]shoplist.Item, len(r.Items)),
		out:      make([]Instruction, 0, 4*len(r.Items)+8),
	}
	for i, it := range r.Items {
		end := r.ArrivalIndex(i)
		s.arrivals[end] = append(s.arrivals[end], it)
	}
	if err := s.walk(); err != nil {
		return nil, err
	}

	return s.out, nil
}

// synth carries the state machine for one Synthesize call.
type synth struct {
	grid     *floorplan.Grid
	path     []floorplan.Point
	options  Options
	arrivals map[int][]shoplist.Item

	facing    Facing
	hasFacing bool
	run       int
	out       []Instruction
}

func (s *synth) walk() error {
	s.emit(Instruction{Kind: KindStart, Text: TextStart, At: s.path[0]})
	s.arrive(0)

	for i := 1; i < len(s.path); i++ {
		f, err := Heading(s.path[i-1], s.path[i])
		if err != nil {
			return err
		}
		switch {
		case !s.hasFacing:
			s.facing, s.hasFacing, s.run = f, true, 1
		case f == s.facing:
			s.run++
		default:
			s.flush(s.path[i-1])
			for s.facing != f {
				k := Turn(s.facing, f)
				s.emit(Instruction{Kind: k, Text: turnText(k), At: s.path[i-1]})
				s.facing = s.facing.Rotate(k)
			}
			s.run = 1
		}
		s.arrive(i)
	}

	last := s.path[len(s.path)-1]
	s.flush(last)
	s.emit(Instruction{Kind: KindFinish, Text: TextFinish, At: last})
	return nil
}

// arrive emits the item turn and scan for every item reached at path index i.
func (s *synth) arrive(i int) {
	items := s.arrivals[i]
	if len(items) == 0 {
		return
	}
	at := s.path[i]
	s.flush(at)
	for _, it := range items {
		k := KindTurnRight
		if it.ShelfX(s.grid) < at.X {
			k = KindTurnLeft
		}
		s.emit(Instruction{Kind: k, Text: itemTurnText(k, it.Label()), ItemID: it.ID, ItemName: it.Name, At: at})
		s.emit(Instruction{Kind: KindScan, Text: scanText(it.Label()), ItemID: it.ID, ItemName: it.Name, At: at})
	}
	s.run = 0
}

// flush emits the pending straight run, if any, ending at at.
func (s *synth) flush(at floorplan.Point) {
	if s.run == 0 {
		return
	}
	s.emit(Instruction{Kind: KindStraight, Text: s.options.straightText(s.run), Distance: s.run, At: at})
	s.run = 0
}

func (s *synth) emit(in Instruction) { s.out = append(s.out, in) }
