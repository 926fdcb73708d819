package validator

import (
	"sort"
	"unicode/utf8"

	"github.com/aretw0/turingtoy/pkg/machine"
)

// Validate turns a parsed definition into an immutable machine.Program,
// or fails with a typed validation error. No partially validated
// program is ever returned.
//
// The foundational fields (blank, start_state presence, table presence,
// alphabet) fail fast because everything else depends on them. The
// remaining checks are independent and are all collected before
// reporting:
//
//  1. the transition table (instruction shape, write symbols, explicit
//     next states),
//  2. the start state, which must be a key of the table,
//  3. the final states, which must all be keys of the table; every
//     missing one is reported, not just the first.
//
// A single failure comes back as its typed error; several come back
// wrapped in a machine.AggregateError, in table order (states and
// symbols sorted) so the report is deterministic.
func Validate(def *machine.Definition) (*machine.Program, error) {
	blank, err := singleRune("blank", def.Blank)
	if err != nil {
		return nil, err
	}
	if def.StartState == "" {
		return nil, &machine.DefinitionError{Field: "start_state", Reason: "required"}
	}
	if len(def.Table) == 0 {
		return nil, &machine.DefinitionError{Field: "table", Reason: "required"}
	}

	alphabet, err := parseAlphabet(def.Alphabet)
	if err != nil {
		return nil, err
	}

	table, errs := validateTable(def, blank, alphabet)

	start := machine.State(def.StartState)
	if _, ok := def.Table[def.StartState]; !ok {
		errs = append(errs, &machine.StartStateError{State: start})
	}

	finals := make([]machine.State, 0, len(def.FinalStates))
	var missing []machine.State
	for _, name := range def.FinalStates {
		s := machine.State(name)
		finals = append(finals, s)
		if _, ok := def.Table[name]; !ok {
			missing = append(missing, s)
		}
	}
	if len(missing) > 0 {
		errs = append(errs, &machine.FinalStatesError{Missing: missing})
	}

	switch len(errs) {
	case 0:
		return machine.NewProgram(blank, start, finals, alphabet, table), nil
	case 1:
		return nil, errs[0]
	default:
		return nil, &machine.AggregateError{Errors: errs}
	}
}

// validateTable builds the typed transition table, collecting every
// per-entry failure instead of stopping at the first.
func validateTable(def *machine.Definition, blank machine.Symbol, alphabet []machine.Symbol) (map[machine.State]map[machine.Symbol]machine.Instruction, []error) {
	writable := symbolSet(alphabet, blank)

	var errs []error
	table := make(map[machine.State]map[machine.Symbol]machine.Instruction, len(def.Table))
	for _, stateName := range sortedKeys(def.Table) {
		rawRow := def.Table[stateName]
		state := machine.State(stateName)
		row := make(map[machine.Symbol]machine.Instruction, len(rawRow))
		for _, symbolKey := range sortedKeys(rawRow) {
			sym, err := rowSymbol(state, symbolKey)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			inst, err := buildInstruction(def, state, symbolKey, rawRow[symbolKey], writable)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			row[sym] = inst
		}
		table[state] = row
	}
	return table, errs
}

// buildInstruction converts one raw transition value into its closed
// union form, enforcing the per-instruction invariants.
func buildInstruction(def *machine.Definition, state machine.State, symbol string, raw machine.RawInstruction, writable map[machine.Symbol]struct{}) (machine.Instruction, error) {
	if raw.BothDirs {
		return nil, &machine.InstructionError{
			State: state, Symbol: symbol,
			Reason: "instruction specifies both \"L\" and \"R\"",
		}
	}

	// Bare movement scalar: direction only, state unchanged.
	if raw.Target == nil && raw.Write == nil {
		if raw.Move == "" {
			return nil, &machine.InstructionError{
				State: state, Symbol: symbol,
				Reason: "missing movement instruction",
			}
		}
		dir := machine.Direction(raw.Move)
		if !dir.Valid() {
			return nil, &machine.InstructionError{
				State: state, Symbol: symbol,
				Reason: "movement must be \"L\" or \"R\"",
			}
		}
		return machine.Move{Direction: dir}, nil
	}

	if raw.Target == nil {
		return nil, &machine.InstructionError{
			State: state, Symbol: symbol,
			Reason: "missing movement instruction",
		}
	}

	next := machine.State(*raw.Target)
	if next == "" {
		return nil, &machine.InstructionError{
			State: state, Symbol: symbol,
			Reason: "empty next state",
		}
	}
	if _, ok := def.Table[*raw.Target]; !ok {
		return nil, &machine.TargetStateError{State: state, Symbol: symbol, Target: next}
	}

	// Mapping without a write key: explicit-state movement.
	if raw.Write == nil {
		return machine.Move{Direction: raw.TargetDir, Next: next}, nil
	}

	w, err := singleRune("write", *raw.Write)
	if err != nil {
		return nil, &machine.InstructionError{
			State: state, Symbol: symbol,
			Reason: "write symbol must be a single character",
		}
	}
	if writable != nil {
		if _, ok := writable[w]; !ok {
			return nil, &machine.WriteSymbolError{State: state, Symbol: symbol, Write: *raw.Write}
		}
	}

	return machine.Write{
		Symbol:    w,
		HasSymbol: true,
		Direction: raw.TargetDir,
		Next:      next,
	}, nil
}

func rowSymbol(state machine.State, key string) (machine.Symbol, error) {
	r, size := utf8.DecodeRuneInString(key)
	if key == "" || size != len(key) || r == utf8.RuneError {
		return 0, &machine.InstructionError{
			State: state, Symbol: key,
			Reason: "tape symbol must be a single character",
		}
	}
	return machine.Symbol(r), nil
}

func parseAlphabet(symbols []string) ([]machine.Symbol, error) {
	if len(symbols) == 0 {
		return nil, nil
	}
	out := make([]machine.Symbol, 0, len(symbols))
	for _, s := range symbols {
		sym, err := singleRune("alphabet", s)
		if err != nil {
			return nil, err
		}
		out = append(out, sym)
	}
	return out, nil
}

func singleRune(field, value string) (machine.Symbol, error) {
	r, size := utf8.DecodeRuneInString(value)
	if value == "" || size != len(value) || r == utf8.RuneError {
		return 0, &machine.DefinitionError{Field: field, Reason: "must be a single character"}
	}
	return machine.Symbol(r), nil
}

// symbolSet returns nil when no alphabet is declared, meaning write
// symbols are unrestricted.
func symbolSet(alphabet []machine.Symbol, blank machine.Symbol) map[machine.Symbol]struct{} {
	if len(alphabet) == 0 {
		return nil
	}
	set := make(map[machine.Symbol]struct{}, len(alphabet)+1)
	for _, s := range alphabet {
		set[s] = struct{}{}
	}
	set[blank] = struct{}{}
	return set
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
