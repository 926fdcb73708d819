package machine

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"
)

// UnmarshalJSON restores the concrete instruction variant behind the
// Instruction interface, so results survive a round-trip through
// stores and transport adapters.
func (e *TraceEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		State       State           `json:"state"`
		Symbol      string          `json:"symbol"`
		Position    int             `json:"position"`
		Tape        string          `json:"tape"`
		Instruction json.RawMessage `json:"instruction"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.State = raw.State
	e.Symbol = raw.Symbol
	e.Position = raw.Position
	e.Tape = raw.Tape
	e.Instruction = nil

	if len(raw.Instruction) == 0 || bytes.Equal(raw.Instruction, []byte("null")) {
		return nil
	}

	var probe struct {
		Write *string   `json:"write"`
		Move  Direction `json:"move"`
		Next  State     `json:"next"`
	}
	if err := json.Unmarshal(raw.Instruction, &probe); err != nil {
		return err
	}

	if probe.Write != nil {
		r, _ := utf8.DecodeRuneInString(*probe.Write)
		e.Instruction = Write{
			Symbol:    Symbol(r),
			HasSymbol: true,
			Direction: probe.Move,
			Next:      probe.Next,
		}
		return nil
	}
	e.Instruction = Move{Direction: probe.Move, Next: probe.Next}
	return nil
}
