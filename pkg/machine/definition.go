package machine

// Definition is the raw, unvalidated machine description as it appears
// on the wire (YAML or JSON). The validator turns it into a Program.
type Definition struct {
	Blank       string `yaml:"blank" json:"blank"`
	StartState  string `yaml:"start_state" json:"start_state"`
	FinalStates []string `yaml:"final_states" json:"final_states"`

	// Alphabet optionally restricts input and write symbols. Empty
	// means unrestricted.
	Alphabet []string `yaml:"alphabet,omitempty" json:"alphabet,omitempty"`

	Table map[string]map[string]RawInstruction `yaml:"table" json:"table"`
}

// RawInstruction is one transition value before validation. Exactly one
// of the two encodings is populated by the parser:
//
//   - Move set: the value was the literal scalar "L" or "R".
//   - Target set (with TargetDir): the value was a mapping carrying an
//     optional "write" and one of the keys "L"/"R" naming a next state.
type RawInstruction struct {
	Move string

	Write     *string
	Target    *string
	TargetDir Direction
	// BothDirs marks a mapping that carried both "L" and "R" keys,
	// which the validator rejects.
	BothDirs bool
}
