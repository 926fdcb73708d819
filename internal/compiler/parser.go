package compiler

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/turingtoy/pkg/machine"
)

// Parse decodes a raw machine description into a machine.Definition.
// YAML is the canonical format; JSON descriptions parse through the
// same path since YAML is a superset.
//
// Parsing is purely structural. It decides which of the two instruction
// encodings each table value uses and rejects duplicate symbol entries;
// semantic checks (directions, alphabets, state references) belong to
// the validator.
func Parse(data []byte) (*machine.Definition, error) {
	var raw struct {
		Blank       string    `yaml:"blank"`
		StartState  string    `yaml:"start_state"`
		FinalStates []string  `yaml:"final_states"`
		Alphabet    []string  `yaml:"alphabet"`
		Table       yaml.Node `yaml:"table"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse machine description: %w", err)
	}

	def := &machine.Definition{
		Blank:       raw.Blank,
		StartState:  raw.StartState,
		FinalStates: raw.FinalStates,
		Alphabet:    raw.Alphabet,
	}

	if raw.Table.Kind == 0 || raw.Table.Tag == "!!null" {
		return nil, &machine.DefinitionError{Field: "table", Reason: "required"}
	}
	table, err := parseTable(&raw.Table)
	if err != nil {
		return nil, err
	}
	def.Table = table

	return def, nil
}

func parseTable(node *yaml.Node) (map[string]map[string]machine.RawInstruction, error) {
	if node.Kind != yaml.MappingNode {
		return nil, &machine.DefinitionError{Field: "table", Reason: "must be a mapping of states to transitions"}
	}

	table := make(map[string]map[string]machine.RawInstruction, len(node.Content)/2)
	for i := 0; i < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		state := key.Value
		if _, dup := table[state]; dup {
			return nil, &machine.DefinitionError{
				Field:  "table",
				Reason: fmt.Sprintf("duplicate state row %q", state),
			}
		}

		row, err := parseRow(machine.State(state), value)
		if err != nil {
			return nil, err
		}
		table[state] = row
	}
	return table, nil
}

// parseRow walks a state's transition mapping node directly so that
// duplicate symbol keys can be reported instead of silently merged.
func parseRow(state machine.State, node *yaml.Node) (map[string]machine.RawInstruction, error) {
	// An explicitly empty row ({} or null) is a terminal state with no
	// outgoing transitions.
	if node.Tag == "!!null" {
		return map[string]machine.RawInstruction{}, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, &machine.InstructionError{
			State:  state,
			Reason: "state row must be a mapping of symbols to instructions",
		}
	}

	row := make(map[string]machine.RawInstruction, len(node.Content)/2)
	for i := 0; i < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		symbol := key.Value
		if _, dup := row[symbol]; dup {
			return nil, &machine.DuplicateSymbolError{State: state, Symbol: symbol}
		}

		inst, err := parseInstruction(state, symbol, value)
		if err != nil {
			return nil, err
		}
		row[symbol] = inst
	}
	return row, nil
}

func parseInstruction(state machine.State, symbol string, node *yaml.Node) (machine.RawInstruction, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		// Bare movement: the literal "L" or "R", state unchanged.
		// Anything else is kept as-is for the validator to reject with
		// a proper error.
		return machine.RawInstruction{Move: node.Value}, nil

	case yaml.MappingNode:
		var inst machine.RawInstruction
		for i := 0; i < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			switch key.Value {
			case "write":
				if inst.Write != nil {
					return machine.RawInstruction{}, &machine.InstructionError{
						State:  state,
						Symbol: symbol,
						Reason: `duplicate instruction key "write"`,
					}
				}
				w := value.Value
				inst.Write = &w
			case string(machine.Left), string(machine.Right):
				if inst.Target != nil {
					// A repeat of the same direction key is a duplicate,
					// not a two-direction conflict.
					if inst.TargetDir == machine.Direction(key.Value) {
						return machine.RawInstruction{}, &machine.InstructionError{
							State:  state,
							Symbol: symbol,
							Reason: fmt.Sprintf("duplicate instruction key %q", key.Value),
						}
					}
					inst.BothDirs = true
					continue
				}
				target := value.Value
				inst.Target = &target
				inst.TargetDir = machine.Direction(key.Value)
			default:
				return machine.RawInstruction{}, &machine.InstructionError{
					State:  state,
					Symbol: symbol,
					Reason: fmt.Sprintf("unknown instruction key %q", key.Value),
				}
			}
		}
		return inst, nil

	default:
		return machine.RawInstruction{}, &machine.InstructionError{
			State:  state,
			Symbol: symbol,
			Reason: "instruction must be \"L\", \"R\" or a mapping",
		}
	}
}
