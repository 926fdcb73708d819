package machine

import "encoding/json"

// Symbol is a single character of the tape alphabet.
type Symbol rune

func (s Symbol) String() string { return string(rune(s)) }

// MarshalJSON renders the symbol as a one-character string instead of
// the rune's code point.
func (s Symbol) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// State is an opaque machine state label. Identity-only comparison.
type State string

// Direction tells the engine which way to move the tape head.
type Direction string

const (
	Left  Direction = "L"
	Right Direction = "R"
)

// Delta is the head offset for one move in this direction.
func (d Direction) Delta() int {
	if d == Right {
		return 1
	}
	return -1
}

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool { return d == Left || d == Right }

// StepLimit bounds the number of steps a run may execute.
// The budget is explicit: callers either pass a bound or opt into
// unbounded execution with NoLimit.
type StepLimit int

// NoLimit runs until the machine halts on its own. A non-halting
// program will loop forever; supply a bound when that matters.
const NoLimit StepLimit = -1

// Bounded reports whether the limit caps execution.
func (l StepLimit) Bounded() bool { return l >= 0 }
