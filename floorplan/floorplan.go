package floorplan

import (
	"fmt"
	"strings"
)

// Grid is an immutable store floor. Cells are stored row-major; the zero value
// is not usable, build one with New or Parse.
type Grid struct {
	width, height int
	cells         []CellKind
	entrance      Point
	checkout      Point
	opts          Options

	// comp[i] is the component label of walkable cell i, -1 for shelves.
	comp  []int
	ncomp int
}

// New constructs a Grid from a non-empty, rectangular matrix rows[y][x].
// The input is deep-copied. Exactly one Entrance and one Checkout are required,
// and they must be connected through walkable cells.
// Complexity: O(W×H).
func New(rows [][]CellKind, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	g := &Grid{
		width:  w,
		height: h,
		cells:  make([]CellKind, w*h),
		opts:   o,
	}
	var entrances, checkouts int
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, k := range row {
			switch k {
			case Open, Shelf:
			case Entrance:
				entrances++
				g.entrance = Point{X: x, Y: y}
			case Checkout:
				checkouts++
				g.checkout = Point{X: x, Y: y}
			default:
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrUnknownCell, k, x, y)
			}
			g.cells[y*w+x] = k
		}
	}
	if entrances != 1 || checkouts != 1 {
		return nil, fmt.Errorf("%w: found %d entrance(s), %d checkout(s)", ErrLandmark, entrances, checkouts)
	}
	g.labelComponents()
	if !g.Connected(g.entrance, g.checkout) {
		return nil, ErrDisconnected
	}

	return g, nil
}

// Parse builds a Grid from layout strings, one per row, using the characters
// '.' (open), '#' (shelf), 'E' (entrance) and 'C' (checkout).
func Parse(rows []string, opts ...Option) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	kinds := make([][]CellKind, len(rows))
	for y, line := range rows {
		kinds[y] = make([]CellKind, 0, len(line))
		for _, r := range line {
			k, err := KindOf(r)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", y, err)
			}
			kinds[y] = append(kinds[y], k)
		}
	}

	return New(kinds, opts...)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns Width×Height.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the kind of the cell at p, or ErrOutOfBounds.
func (g *Grid) At(p Point) (CellKind, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.width, g.height)
	}
	return g.cells[g.Index(p)], nil
}

// MustAt is At for callers that have already validated p; it panics otherwise.
func (g *Grid) MustAt(p Point) CellKind {
	k, err := g.At(p)
	if err != nil {
		panic(err)
	}
	return k
}

// Walkable reports whether p is inside the grid and not a shelf.
func (g *Grid) Walkable(p Point) bool {
	return g.InBounds(p) && g.cells[g.Index(p)].Walkable()
}

// Entrance returns the entrance cell.
func (g *Grid) Entrance() Point { return g.entrance }

// Checkout returns the checkout cell.
func (g *Grid) Checkout() Point { return g.checkout }

// ShelfX returns the shelf column of aisle (1-based).
func (g *Grid) ShelfX(aisle int) int {
	return g.opts.FirstShelfX + (aisle-1)*g.opts.AisleStride
}

// LaneX returns the navigable lane column of aisle (1-based), one cell east of
// its shelf column.
func (g *Grid) LaneX(aisle int) int {
	return g.ShelfX(aisle) + 1
}

// NavPoint returns the lane cell from which section of aisle is approached.
// The result is not validated; callers check Walkable when they need to.
func (g *Grid) NavPoint(aisle, section int) Point {
	return Point{X: g.LaneX(aisle), Y: section}
}

// Aisles returns the number of consecutive aisles, starting at 1, whose lane
// fits in the grid and whose shelf column holds at least one shelf cell.
func (g *Grid) Aisles() int {
	n := 0
	for a := 1; g.LaneX(a) < g.width && g.hasShelf(g.ShelfX(a)); a++ {
		n++
	}
	return n
}

func (g *Grid) hasShelf(x int) bool {
	for y := 0; y < g.height; y++ {
		if g.cells[y*g.width+x] == Shelf {
			return true
		}
	}
	return false
}

// Index maps p to its row-major index y*Width + x. p must be in bounds.
func (g *Grid) Index(p Point) int { return p.Y*g.width + p.X }

// Coordinate converts a row-major index back to a Point.
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}

// Rows renders the grid back into layout strings.
func (g *Grid) Rows() []string {
	out := make([]string, g.height)
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		sb.Reset()
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.cells[y*g.width+x].Rune())
		}
		out[y] = sb.String()
	}
	return out
}

// String renders the grid one row per line.
func (g *Grid) String() string { return strings.Join(g.Rows(), "\n") }
