package machine

// Program is a validated, immutable machine. It is constructed once by
// the validator and safe to share across concurrent runs; the engine
// only ever reads it.
type Program struct {
	blank    Symbol
	start    State
	finals   map[State]struct{}
	alphabet map[Symbol]struct{}
	table    map[State]map[Symbol]Instruction
}

// NewProgram assembles a validated machine. Callers (normally the
// validator) own the invariants; NewProgram copies nothing and trusts
// its inputs.
func NewProgram(blank Symbol, start State, finals []State, alphabet []Symbol, table map[State]map[Symbol]Instruction) *Program {
	p := &Program{
		blank: blank,
		start: start,
		table: table,
	}
	if len(finals) > 0 {
		p.finals = make(map[State]struct{}, len(finals))
		for _, s := range finals {
			p.finals[s] = struct{}{}
		}
	}
	if len(alphabet) > 0 {
		p.alphabet = make(map[Symbol]struct{}, len(alphabet)+1)
		for _, s := range alphabet {
			p.alphabet[s] = struct{}{}
		}
		// The blank fills fresh cells, so it is always writable.
		p.alphabet[blank] = struct{}{}
	}
	return p
}

// Blank is the symbol used for fresh tape cells.
func (p *Program) Blank() Symbol { return p.blank }

// Start is the initial state of every run.
func (p *Program) Start() State { return p.start }

// IsFinal reports whether s is an accepting state.
func (p *Program) IsFinal(s State) bool {
	_, ok := p.finals[s]
	return ok
}

// FinalStates lists the accepting states in unspecified order.
func (p *Program) FinalStates() []State {
	out := make([]State, 0, len(p.finals))
	for s := range p.finals {
		out = append(out, s)
	}
	return out
}

// Lookup returns the instruction for (state, symbol), if any.
func (p *Program) Lookup(state State, symbol Symbol) (Instruction, bool) {
	row, ok := p.table[state]
	if !ok {
		return nil, false
	}
	inst, ok := row[symbol]
	return inst, ok
}

// HasState reports whether the table has a row for s (possibly empty).
func (p *Program) HasState(s State) bool {
	_, ok := p.table[s]
	return ok
}

// Restricted reports whether the program declares an input alphabet.
func (p *Program) Restricted() bool { return p.alphabet != nil }

// Allows reports whether s may appear on the tape. Unrestricted
// programs allow everything.
func (p *Program) Allows(s Symbol) bool {
	if p.alphabet == nil {
		return true
	}
	_, ok := p.alphabet[s]
	return ok
}

// CheckInput verifies every input character against the declared
// alphabet. Unrestricted programs accept any input.
func (p *Program) CheckInput(input string) error {
	if p.alphabet == nil {
		return nil
	}
	for i, r := range input {
		if !p.Allows(Symbol(r)) {
			return &InputError{Symbol: Symbol(r), Position: i}
		}
	}
	return nil
}
