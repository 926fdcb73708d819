package machine

import (
	"fmt"
	"strings"
)

// Validation errors are typed so callers can tell a broken description
// apart programmatically. They are only ever produced before execution
// begins; the engine never fails a validated program mid-run.

// DefinitionError flags a malformed top-level field (missing blank,
// blank longer than one character, missing table...).
type DefinitionError struct {
	Field  string
	Reason string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// StartStateError is returned when the start state has no row in the
// transition table.
type StartStateError struct {
	State State
}

func (e *StartStateError) Error() string {
	return fmt.Sprintf("start state %q not in transition table", string(e.State))
}

// FinalStatesError enumerates every declared final state that has no
// row in the transition table, not just the first one found.
type FinalStatesError struct {
	Missing []State
}

func (e *FinalStatesError) Error() string {
	names := make([]string, len(e.Missing))
	for i, s := range e.Missing {
		names[i] = fmt.Sprintf("%q", string(s))
	}
	return fmt.Sprintf("final states not in transition table: %s", strings.Join(names, ", "))
}

// InstructionError flags a transition value that is not one of the two
// accepted encodings (bad scalar, missing movement, both movements,
// multi-character symbol...).
type InstructionError struct {
	State  State
	Symbol string
	Reason string
}

func (e *InstructionError) Error() string {
	return fmt.Sprintf("table[%q][%q]: %s", string(e.State), e.Symbol, e.Reason)
}

// WriteSymbolError flags a write character outside the declared
// alphabet.
type WriteSymbolError struct {
	State  State
	Symbol string
	Write  string
}

func (e *WriteSymbolError) Error() string {
	return fmt.Sprintf("table[%q][%q]: write symbol %q not in alphabet", string(e.State), e.Symbol, e.Write)
}

// TargetStateError flags an instruction whose explicit next state has
// no row in the transition table.
type TargetStateError struct {
	State  State
	Symbol string
	Target State
}

func (e *TargetStateError) Error() string {
	return fmt.Sprintf("table[%q][%q]: next state %q not in transition table", string(e.State), e.Symbol, string(e.Target))
}

// DuplicateSymbolError flags a state row that lists the same symbol
// twice. Duplicate entries are rejected, never merged.
type DuplicateSymbolError struct {
	State  State
	Symbol string
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("table[%q]: duplicate entry for symbol %q", string(e.State), e.Symbol)
}

// InputError is returned by Run when the input string contains a
// character outside the program's declared alphabet.
type InputError struct {
	Symbol   Symbol
	Position int
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input symbol %q at position %d not in alphabet", e.Symbol.String(), e.Position)
}

// AggregateError carries multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, err.Error())
	}
	return b.String()
}

// Unwrap exposes the collected errors to errors.Is/errors.As.
func (e *AggregateError) Unwrap() []error { return e.Errors }

// ValidationErrors returns the individual failures if err is an
// AggregateError, otherwise nil.
func ValidationErrors(err error) []error {
	if aggr, ok := err.(*AggregateError); ok {
		return aggr.Errors
	}
	return nil
}
