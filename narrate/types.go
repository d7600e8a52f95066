package narrate

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/storenav/floorplan"
)

// Sentinel errors for synthesis.
var (
	// ErrNilGrid indicates a nil grid was supplied.
	ErrNilGrid = errors.New("narrate: grid is nil")
	// ErrNilRoute indicates a nil route was supplied.
	ErrNilRoute = errors.New("narrate: route is nil")
	// ErrBrokenPath indicates two consecutive path cells are not 4-neighbours.
	ErrBrokenPath = errors.New("narrate: path is not 4-connected")
	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("narrate: invalid option supplied")
	// ErrUnknownKind indicates an unrecognised kind name.
	ErrUnknownKind = errors.New("narrate: unknown instruction kind")
	// ErrLegEnds indicates a route with fewer leg ends than items plus one.
	ErrLegEnds = errors.New("narrate: route is missing leg ends")
)

// Kind is the closed set of instruction kinds.
type Kind int

const (
	KindStart Kind = iota
	KindStraight
	KindLeft
	KindRight
	KindTurnLeft  // item on the left
	KindTurnRight // item on the right
	KindScan
	KindFinish
)

var kindNames = [...]string{
	KindStart:     "start",
	KindStraight:  "straight",
	KindLeft:      "left",
	KindRight:     "right",
	KindTurnLeft:  "turn-left",
	KindTurnRight: "turn-right",
	KindScan:      "scan",
	KindFinish:    "finish",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, b)
}

// IsItemTurn reports whether k is an item-arrival turn.
func (k Kind) IsItemTurn() bool { return k == KindTurnLeft || k == KindTurnRight }

// Facing is a compass heading on the grid. North is towards row 0.
type Facing int

const (
	North Facing = iota
	South
	East
	West
)

func (f Facing) String() string {
	switch f {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	}
	return "Facing(" + strconv.Itoa(int(f)) + ")"
}

// Instruction is one narratable step.
type Instruction struct {
	Kind     Kind            `json:"kind"`
	Text     string          `json:"text"`
	Distance int             `json:"distance,omitempty"` // cells, straight only
	ItemID   string          `json:"item_id,omitempty"`
	ItemName string          `json:"item_name,omitempty"`
	At       floorplan.Point `json:"at"`
}

func (in Instruction) String() string { return in.Text }

// Options configures Synthesize.
type Options struct {
	// Scale multiplies straight distances in Text.
	Scale float64
	// Unit is appended to the scaled distance; UnitOne when it equals 1.
	Unit    string
	UnitOne string

	err error
}

// Option is a functional option for Synthesize.
type Option func(*Options)

// DefaultOptions reports distances as steps.
func DefaultOptions() Options {
	return Options{Scale: 1, Unit: "steps", UnitOne: "step"}
}

// WithDistanceScale renders straight runs as distance·mult followed by unit
// (mult > 0, unit non-empty). Instruction.Distance is unaffected.
func WithDistanceScale(mult float64, unit string) Option {
	return func(o *Options) {
		if !(mult > 0) {
			o.err = fmt.Errorf("%w: scale must be positive (%g)", ErrOptionViolation, mult)
			return
		}
		if unit == "" {
			o.err = fmt.Errorf("%w: unit is empty", ErrOptionViolation)
			return
		}
		o.Scale, o.Unit, o.UnitOne = mult, unit, unit
	}
}
