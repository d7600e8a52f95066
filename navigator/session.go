package navigator

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/storenav/confirm"
	"github.com/katalvlaran/storenav/narrate"
)

// State is a snapshot of a session.
type State struct {
	Index       int                 `json:"index"`
	Total       int                 `json:"total"`
	Instruction narrate.Instruction `json:"instruction"`
	// Guidance replaces the instruction text after a failed scan.
	Guidance string   `json:"guidance,omitempty"`
	Done     bool     `json:"done"`
	Scanned  []string `json:"scanned,omitempty"`
}

// Session is a cursor into one Result. The instruction sequence never
// changes; only the cursor, the guidance and the set of confirmed items do.
type Session struct {
	mu       sync.Mutex
	res      *Result
	index    *PositionIndex
	cursor   int
	guidance string
	scanned  []string
}

// NewSession starts at the first instruction of res.
func NewSession(res *Result) *Session {
	return &Session{
		res:   res,
		index: NewPositionIndex(res.Instructions),
	}
}

// Result returns the plan the session walks.
func (s *Session) Result() *Result { return s.res }

// State returns the current snapshot.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// Next advances one instruction. It stays on the last one.
func (s *Session) Next() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moveLocked(s.cursor + 1)
	return s.stateLocked()
}

// Skip abandons the item ahead: the cursor moves past that item's scan. With
// no item ahead it moves to the last instruction.
func (s *Session) Skip() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	ins := s.res.Instructions
	target := len(ins) - 1
	for i := s.cursor; i < len(ins); i++ {
		if ins[i].Kind == narrate.KindScan {
			target = i + 1
			break
		}
	}
	s.moveLocked(target)
	return s.stateLocked()
}

// Seek moves forward to the unvisited instruction nearest (x, y). The cursor
// never moves backwards.
func (s *Session) Seek(x, y float64) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx, ok := s.index.Nearest(x, y, s.cursor); ok && idx > s.cursor {
		s.moveLocked(idx)
	}
	return s.stateLocked()
}

// Scan asks c whether image shows the item of the current scan instruction.
// A confirmed item advances the cursor. Otherwise the cursor stays and the
// state carries guidance: the judge's own text, or "Scan failed, try again".
// Errors from c are returned alongside that degraded state.
func (s *Session) Scan(ctx context.Context, c confirm.Confirmer, image []byte) (State, error) {
	s.mu.Lock()
	at := s.cursor
	in := s.res.Instructions[at]
	if in.Kind != narrate.KindScan {
		st := s.stateLocked()
		s.mu.Unlock()
		return st, fmt.Errorf("%w: %s", ErrNotScanning, in.Kind)
	}
	s.mu.Unlock()

	name := in.ItemName
	if name == "" {
		name = in.ItemID
	}
	verdict, err := c.Confirm(ctx, image, name)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor != at {
		return s.stateLocked(), ErrStale
	}
	switch {
	case err != nil:
		s.guidance = narrate.TextScanFailed
		return s.stateLocked(), fmt.Errorf("navigator: confirm %s: %w", in.ItemID, err)
	case !verdict.Found:
		s.guidance = verdict.Guidance
		if s.guidance == "" {
			s.guidance = narrate.TextScanFailed
		}
		return s.stateLocked(), nil
	}
	s.scanned = append(s.scanned, in.ItemID)
	s.moveLocked(at + 1)
	return s.stateLocked(), nil
}

func (s *Session) moveLocked(i int) {
	if last := len(s.res.Instructions) - 1; i > last {
		i = last
	}
	if i != s.cursor {
		s.guidance = ""
	}
	s.cursor = i
}

func (s *Session) stateLocked() State {
	ins := s.res.Instructions
	return State{
		Index:       s.cursor,
		Total:       len(ins),
		Instruction: ins[s.cursor],
		Guidance:    s.guidance,
		Done:        s.cursor == len(ins)-1,
		Scanned:     append([]string(nil), s.scanned...),
	}
}
