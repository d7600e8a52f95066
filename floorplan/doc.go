// Package floorplan models a single-floor store as an immutable occupancy grid.
//
// What:
//
//   - Grid wraps a rectangular matrix of cell kinds: Open, Shelf, Entrance, Checkout.
//   - Exactly one Entrance and one Checkout cell act as the fixed route anchors.
//   - Aisles are numbered from 1; aisle a owns a shelf column and the lane column
//     beside it from which its sections are approached.
//   - Walkable cells are grouped into connected components once at construction,
//     so reachability between two points is an O(1) lookup.
//
// Lane mapping (defaults):
//
//	ShelfX(a) = (a-1)*2 + 1
//	LaneX(a)  = (a-1)*2 + 2
//	NavPoint(a, section) = (LaneX(a), section)
//
// Connectivity is always 4-directional (up, down, left, right); diagonal moves
// are never produced by anything in this module.
//
// Complexity:
//
//   - New / Parse: O(W×H) time and memory (includes component labelling).
//   - At, Walkable, Connected: O(1).
//
// Errors:
//
//   - ErrEmptyGrid:       no rows or no columns.
//   - ErrNonRectangular:  rows of differing lengths.
//   - ErrUnknownCell:     a layout character outside ". # E C".
//   - ErrLandmark:        entrance or checkout missing or duplicated.
//   - ErrDisconnected:    entrance and checkout are not connected.
//   - ErrOutOfBounds:     a lookup outside the grid (contract violation).
//   - ErrOptionViolation: an invalid Option value.
package floorplan
