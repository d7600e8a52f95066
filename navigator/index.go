package navigator

import (
	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/storenav/floorplan"
	"github.com/katalvlaran/storenav/narrate"
)

// instructionEntry wraps an instruction position for R-tree storage.
type instructionEntry struct {
	index int
	at    floorplan.Point
	bbox  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *instructionEntry) Bounds() rtreego.Rect { return e.bbox }

// PositionIndex finds the instruction nearest to a sampled shopper position.
type PositionIndex struct {
	tree *rtreego.Rtree
}

// NewPositionIndex indexes the point of every instruction.
func NewPositionIndex(ins []narrate.Instruction) *PositionIndex {
	tree := rtreego.NewTree(2, 2, 8)
	for i, in := range ins {
		tree.Insert(&instructionEntry{
			index: i,
			at:    in.At,
			bbox:  rtreego.Point{float64(in.At.X), float64(in.At.Y)}.ToRect(0.01),
		})
	}
	return &PositionIndex{tree: tree}
}

// Nearest returns the index of the instruction closest to (x, y) among those
// with index ≥ from. Instructions sharing a cell resolve to the lowest index.
// ok is false when no instruction at or after from exists.
func (pi *PositionIndex) Nearest(x, y float64, from int) (idx int, ok bool) {
	if pi.tree.Size() == 0 {
		return 0, false
	}
	ahead := func(_ []rtreego.Spatial, obj rtreego.Spatial) (refuse, abort bool) {
		return obj.(*instructionEntry).index < from, false
	}

	nn := pi.tree.NearestNeighbors(1, rtreego.Point{x, y}, ahead)
	if len(nn) == 0 {
		return 0, false
	}
	cell := nn[0].(*instructionEntry)
	idx = cell.index
	for _, sp := range pi.tree.SearchIntersect(cell.bbox, ahead) {
		if e := sp.(*instructionEntry); e.at == cell.at && e.index < idx {
			idx = e.index
		}
	}
	return idx, true
}
