package narrate

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/storenav/floorplan"
)

// Fixed guidance texts.
const (
	TextStart      = "Start at the entrance"
	TextLeft       = "Turn left"
	TextRight      = "Turn right"
	TextFinish     = "Proceed to checkout"
	TextEmptyList  = "Add items to your list to begin."
	TextNoRoute    = "Cannot calculate path"
	TextScanFailed = "Scan failed, try again"
)

// EmptyList is the whole instruction sequence for a list with no items.
func EmptyList(checkout floorplan.Point) []Instruction {
	return []Instruction{{Kind: KindFinish, Text: TextEmptyList, At: checkout}}
}

// NoRoute is the terminal instruction used when no route can be assembled.
func NoRoute(at floorplan.Point) []Instruction {
	return []Instruction{{Kind: KindFinish, Text: TextNoRoute, At: at}}
}

func (o Options) straightText(cells int) string {
	v := float64(cells) * o.Scale
	unit := o.Unit
	if v == 1 && o.UnitOne != "" {
		unit = o.UnitOne
	}
	return "Go straight for " + strconv.FormatFloat(v, 'f', -1, 64) + " " + unit
}

func itemTurnText(k Kind, name string) string {
	side := "right"
	if k == KindTurnLeft {
		side = "left"
	}
	return fmt.Sprintf("Turn %s to face %s", side, name)
}

func scanText(name string) string { return "Scan " + name }

func turnText(k Kind) string {
	if k == KindLeft {
		return TextLeft
	}
	return TextRight
}
