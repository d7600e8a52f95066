// Package shoplist defines the shopping-list entries the router visits.
//
// An Item is owned by the caller's list state; routing code only reads it.
// Its location is an (aisle, section) pair which a floorplan.Grid turns into
// a navigation point in the aisle's lane.
package shoplist

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/storenav/floorplan"
)

// Sentinel errors for list validation.
var (
	// ErrEmptyID indicates an item without an identifier.
	ErrEmptyID = errors.New("shoplist: item id is empty")
	// ErrDuplicateID indicates two items share an identifier.
	ErrDuplicateID = errors.New("shoplist: duplicate item id")
	// ErrLocation indicates an aisle or section outside the layout.
	ErrLocation = errors.New("shoplist: item location outside the layout")
)

// Item is one shopping-list entry.
type Item struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Aisle   int    `json:"aisle"`
	Section int    `json:"section"`
}

// String formats the item as "name (aisle a, section s)".
func (it Item) String() string {
	return fmt.Sprintf("%s (aisle %d, section %d)", it.Label(), it.Aisle, it.Section)
}

// Label returns the display name, falling back to the id.
func (it Item) Label() string {
	if it.Name != "" {
		return it.Name
	}
	return it.ID
}

// NavPoint returns the lane cell from which the item is picked.
func (it Item) NavPoint(g *floorplan.Grid) floorplan.Point {
	return g.NavPoint(it.Aisle, it.Section)
}

// ShelfX returns the column of the shelf holding the item.
func (it Item) ShelfX(g *floorplan.Grid) int {
	return g.ShelfX(it.Aisle)
}

// List is an unordered set of items keyed by ID.
type List []Item

// Validate checks ids are present and unique and that every navigation point
// lies inside g. Reachability is not checked here; the planner reports
// unreachable items separately.
func (l List) Validate(g *floorplan.Grid) error {
	seen := make(map[string]struct{}, len(l))
	for i, it := range l {
		if it.ID == "" {
			return fmt.Errorf("%w: entry %d", ErrEmptyID, i)
		}
		if _, dup := seen[it.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateID, it.ID)
		}
		seen[it.ID] = struct{}{}
		if it.Aisle < 1 || !g.InBounds(it.NavPoint(g)) {
			return fmt.Errorf("%w: %v", ErrLocation, it)
		}
	}
	return nil
}

// Find returns the item with the given id.
func (l List) Find(id string) (Item, bool) {
	for _, it := range l {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// IDs returns the item ids in list order.
func (l List) IDs() []string {
	out := make([]string, len(l))
	for i, it := range l {
		out[i] = it.ID
	}
	return out
}

// Clone returns a copy that shares no backing array with l.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}
