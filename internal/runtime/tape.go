package runtime

import (
	"strings"

	"github.com/aretw0/turingtoy/pkg/machine"
)

// Tape is the machine's storage: a one-dimensional sequence of symbols,
// conceptually infinite in both directions, materialized lazily. It
// belongs to a single run and is never shared.
type Tape struct {
	cells []machine.Symbol
	blank machine.Symbol
}

// NewTape initializes the tape with the input string.
func NewTape(input string, blank machine.Symbol) *Tape {
	cells := make([]machine.Symbol, 0, len(input))
	for _, r := range input {
		cells = append(cells, machine.Symbol(r))
	}
	return &Tape{cells: cells, blank: blank}
}

// Seek extends the tape when head points outside the current bounds and
// returns the (possibly rebased) head. Extension is lazy: exactly one
// blank cell, only on the side actually accessed. A front extension
// shifts every existing index by one, so head comes back as 0.
func (t *Tape) Seek(head int) int {
	if head < 0 {
		t.cells = append(t.cells, 0)
		copy(t.cells[1:], t.cells)
		t.cells[0] = t.blank
		return 0
	}
	if head >= len(t.cells) {
		t.cells = append(t.cells, t.blank)
	}
	return head
}

// Read returns the symbol at position i. The caller must have Seeked i
// into bounds first.
func (t *Tape) Read(i int) machine.Symbol { return t.cells[i] }

// Set writes a symbol at position i.
func (t *Tape) Set(i int, s machine.Symbol) { t.cells[i] = s }

// Len is the number of materialized cells.
func (t *Tape) Len() int { return len(t.cells) }

// String renders the full tape, blanks included.
func (t *Tape) String() string {
	var b strings.Builder
	b.Grow(len(t.cells))
	for _, c := range t.cells {
		b.WriteRune(rune(c))
	}
	return b.String()
}

// Output renders the tape with the leading and trailing blank runs
// stripped. Interior blanks are preserved.
func (t *Tape) Output() string {
	return strings.Trim(t.String(), string(rune(t.blank)))
}
