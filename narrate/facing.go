package narrate

import (
	"fmt"

	"github.com/katalvlaran/storenav/floorplan"
)

// Heading returns the facing of a single step from a to b.
func Heading(a, b floorplan.Point) (Facing, error) {
	if a.Manhattan(b) != 1 {
		return 0, fmt.Errorf("%w: %v→%v", ErrBrokenPath, a, b)
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	switch {
	case dy < 0:
		return North, nil
	case dy > 0:
		return South, nil
	case dx > 0:
		return East, nil
	default:
		return West, nil
	}
}

// turns is the 90° table; pairs not listed are straight or reversals.
var turns = map[[2]Facing]Kind{
	{North, West}: KindLeft,
	{North, East}: KindRight,
	{South, West}: KindRight,
	{South, East}: KindLeft,
	{West, South}: KindLeft,
	{West, North}: KindRight,
	{East, South}: KindRight,
	{East, North}: KindLeft,
}

// Turn classifies a change of facing as KindStraight (no change), KindLeft or
// KindRight. A reversal is two right quarter turns; Turn returns the first.
func Turn(from, to Facing) Kind {
	if from == to {
		return KindStraight
	}
	if k, ok := turns[[2]Facing{from, to}]; ok {
		return k
	}
	return KindRight
}

// Rotate returns the facing after a quarter turn k. Kinds other than
// KindLeft and KindRight leave f unchanged.
func (f Facing) Rotate(k Kind) Facing {
	switch k {
	case KindRight:
		return clockwise[f]
	case KindLeft:
		return clockwise[clockwise[clockwise[f]]]
	default:
		return f
	}
}

var clockwise = [...]Facing{North: East, East: South, South: West, West: North}
