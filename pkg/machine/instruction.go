package machine

import "fmt"

// Instruction is a closed union over the two things a transition can do:
// move the head (Move) or write a symbol and then move (Write). The
// variant is decided once at load time; the engine never re-inspects
// raw description values.
type Instruction interface {
	// Dir is the head movement every instruction carries exactly one of.
	Dir() Direction
	fmt.Stringer

	instruction()
}

// Move shifts the head one cell without touching the tape.
// Next is the state to transition to; empty means the state is
// unchanged (the bare "L"/"R" encoding).
type Move struct {
	Direction Direction `json:"move"`
	Next      State     `json:"next,omitempty"`
}

func (m Move) Dir() Direction { return m.Direction }

func (m Move) String() string {
	if m.Next == "" {
		return fmt.Sprintf("move %s", m.Direction)
	}
	return fmt.Sprintf("move %s -> %s", m.Direction, m.Next)
}

func (Move) instruction() {}

// Write optionally rewrites the cell under the head, then moves and
// transitions to Next. HasSymbol distinguishes "write nothing" from
// writing the zero symbol.
type Write struct {
	Symbol    Symbol    `json:"write,omitempty"`
	HasSymbol bool      `json:"-"`
	Direction Direction `json:"move"`
	Next      State     `json:"next"`
}

func (w Write) Dir() Direction { return w.Direction }

func (w Write) String() string {
	if !w.HasSymbol {
		return fmt.Sprintf("move %s -> %s", w.Direction, w.Next)
	}
	return fmt.Sprintf("write %q, move %s -> %s", w.Symbol.String(), w.Direction, w.Next)
}

func (Write) instruction() {}
