package machine

// HaltCause says why a run stopped. The three causes stay
// distinguishable so callers can tell a wrong program apart from a
// probably-infinite one.
type HaltCause string

const (
	// HaltAccepted: the machine reached a final state.
	HaltAccepted HaltCause = "accepted"
	// HaltStuck: no transition existed for (state, symbol).
	HaltStuck HaltCause = "stuck"
	// HaltBudget: the step limit ran out before the machine halted.
	HaltBudget HaltCause = "budget-exhausted"
)

// TraceEntry is one executed step, captured at decision time: it
// reflects the machine before the instruction was applied.
type TraceEntry struct {
	State       State       `json:"state"`
	Symbol      string      `json:"symbol"`
	Position    int         `json:"position"`
	Tape        string      `json:"tape"`
	Instruction Instruction `json:"instruction"`
}

// Trace is the ordered, append-only record of a run. Diagnostics only;
// the engine never consults it for control flow.
type Trace []TraceEntry

// Result is the complete outcome of one run.
type Result struct {
	// Output is the tape at halt with leading and trailing blank runs
	// stripped. Interior blanks survive.
	Output string `json:"output"`

	Trace    Trace     `json:"trace,omitempty"`
	Accepted bool      `json:"accepted"`
	Halt     HaltCause `json:"halt"`
	Steps    int       `json:"steps"`

	// TapeCells is the number of cells materialized by the run, input
	// included. A measure of how far the machine wandered.
	TapeCells int `json:"tape_cells"`
}

// Hooks receive execution events. Both fields are optional; nil hooks
// cost nothing. Used to attach logging or metrics without coupling the
// engine to either.
type Hooks struct {
	OnStep func(TraceEntry)
	OnHalt func(*Result)
}
