package floorplan

import (
	"errors"
	"fmt"
)

// Sentinel errors for floorplan operations.
var (
	// ErrEmptyGrid indicates the layout has no rows or no columns.
	ErrEmptyGrid = errors.New("floorplan: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("floorplan: all rows must have the same length")
	// ErrUnknownCell indicates an unrecognised layout character or cell kind.
	ErrUnknownCell = errors.New("floorplan: unknown cell kind")
	// ErrLandmark indicates a missing or duplicated entrance/checkout cell.
	ErrLandmark = errors.New("floorplan: layout needs exactly one entrance and one checkout")
	// ErrDisconnected indicates the checkout cannot be reached from the entrance.
	ErrDisconnected = errors.New("floorplan: entrance and checkout are not connected")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("floorplan: point out of bounds")
	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("floorplan: invalid option supplied")
)

// CellKind is the occupancy class of one grid cell.
type CellKind uint8

const (
	// Open is free floor.
	Open CellKind = iota
	// Shelf is an obstacle.
	Shelf
	// Entrance is the single route start cell.
	Entrance
	// Checkout is the single route end cell.
	Checkout
)

// String returns the lower-case kind name.
func (k CellKind) String() string {
	switch k {
	case Open:
		return "open"
	case Shelf:
		return "shelf"
	case Entrance:
		return "entrance"
	case Checkout:
		return "checkout"
	default:
		return fmt.Sprintf("cellkind(%d)", uint8(k))
	}
}

// Walkable reports whether a shopper may stand on a cell of this kind.
func (k CellKind) Walkable() bool { return k == Open || k == Entrance || k == Checkout }

// Rune returns the layout character for k.
func (k CellKind) Rune() rune {
	switch k {
	case Shelf:
		return '#'
	case Entrance:
		return 'E'
	case Checkout:
		return 'C'
	default:
		return '.'
	}
}

// KindOf maps a layout character to its CellKind.
func KindOf(r rune) (CellKind, error) {
	switch r {
	case '.', ' ':
		return Open, nil
	case '#':
		return Shelf, nil
	case 'E', 'e':
		return Entrance, nil
	case 'C', 'c':
		return Checkout, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCell, r)
	}
}

// Point is an integer grid coordinate. X grows east, Y grows south.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// String formats p as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Add returns p translated by d.
func (p Point) Add(d Point) Point { return Point{X: p.X + d.X, Y: p.Y + d.Y} }

// Manhattan returns |dx|+|dy| between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Conn4 lists the neighbour offsets in expansion order: up, down, left, right.
var Conn4 = [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Option configures the aisle geometry of a Grid.
type Option func(*Options)

// Options holds the aisle geometry. Shelf column of aisle a is
// FirstShelfX + (a-1)*AisleStride; its lane is one cell east of the shelf.
type Options struct {
	FirstShelfX int
	AisleStride int

	err error
}

// DefaultOptions returns FirstShelfX=1, AisleStride=2.
func DefaultOptions() Options {
	return Options{FirstShelfX: 1, AisleStride: 2}
}

// WithFirstShelfX sets the x of aisle 1's shelf column (x ≥ 0).
func WithFirstShelfX(x int) Option {
	return func(o *Options) {
		if x < 0 {
			o.err = fmt.Errorf("%w: FirstShelfX cannot be negative (%d)", ErrOptionViolation, x)
			return
		}
		o.FirstShelfX = x
	}
}

// WithAisleStride sets the column distance between consecutive aisles (stride ≥ 2).
func WithAisleStride(stride int) Option {
	return func(o *Options) {
		if stride < 2 {
			o.err = fmt.Errorf("%w: AisleStride must be at least 2 (%d)", ErrOptionViolation, stride)
			return
		}
		o.AisleStride = stride
	}
}
