package turingtoy_test

import (
	"testing"

	"github.com/aretw0/turingtoy"
	"github.com/aretw0/turingtoy/pkg/machine"
)

var increment = []byte(`
blank: ' '
start_state: right
final_states: [done]
table:
  right:
    '1': R
    '0': R
    ' ': {L: inc}
  inc:
    '1': {write: '0', L: inc}
    '0': {write: '1', R: done}
    ' ': {write: '1', R: done}
  done: {}
`)

func TestSimulator_Integration(t *testing.T) {
	sim := turingtoy.New()

	// 1. Load
	program, err := sim.Load(increment)
	if err != nil {
		t.Fatalf("Failed to load description: %v", err)
	}
	if program.Start() != "right" {
		t.Errorf("Expected start state 'right', got '%s'", program.Start())
	}

	// 2. Run
	result, err := sim.Run(program, "1011", machine.NoLimit)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Output != "1100" {
		t.Errorf("Expected output '1100', got '%s'", result.Output)
	}
	if !result.Accepted {
		t.Error("Expected the run to be accepted")
	}
	if result.Halt != machine.HaltAccepted {
		t.Errorf("Expected halt cause 'accepted', got '%s'", result.Halt)
	}

	// 3. One program, many runs
	again, err := sim.Run(program, "111", machine.NoLimit)
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}
	if again.Output != "1000" {
		t.Errorf("Expected output '1000', got '%s'", again.Output)
	}
}

func TestSimulator_RunDescription(t *testing.T) {
	result, err := turingtoy.New().RunDescription(increment, "0", machine.StepLimit(100))
	if err != nil {
		t.Fatalf("RunDescription failed: %v", err)
	}
	if result.Output != "1" {
		t.Errorf("Expected output '1', got '%s'", result.Output)
	}
}

func TestPackageLevelHelpers(t *testing.T) {
	if _, err := turingtoy.Load(increment); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	result, err := turingtoy.Run(increment, "1011", machine.NoLimit)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Steps != len(result.Trace) {
		t.Errorf("Steps (%d) and trace length (%d) disagree", result.Steps, len(result.Trace))
	}
}

func TestLoad_Idempotent(t *testing.T) {
	sim := turingtoy.New()

	first, err := sim.Load(increment)
	if err != nil {
		t.Fatalf("First load failed: %v", err)
	}
	second, err := sim.Load(increment)
	if err != nil {
		t.Fatalf("Second load failed: %v", err)
	}

	a, err := sim.Run(first, "1011", machine.NoLimit)
	if err != nil {
		t.Fatal(err)
	}
	b, err := sim.Run(second, "1011", machine.NoLimit)
	if err != nil {
		t.Fatal(err)
	}
	if a.Output != b.Output || a.Steps != b.Steps || a.Halt != b.Halt {
		t.Errorf("Programs from the same description behave differently: %+v vs %+v", a, b)
	}
}

func TestLoad_BrokenDescription(t *testing.T) {
	_, err := turingtoy.Load([]byte(`
blank: ' '
start_state: ghost
table:
  a: {}
`))
	if err == nil {
		t.Fatal("Expected a validation error for an unknown start state")
	}
}

func TestLoadDefinition(t *testing.T) {
	target := "b"
	def := &machine.Definition{
		Blank:       "_",
		StartState:  "a",
		FinalStates: []string{"b"},
		Table: map[string]map[string]machine.RawInstruction{
			"a": {"1": {Target: &target, TargetDir: machine.Right}},
			"b": {},
		},
	}

	program, err := turingtoy.New().LoadDefinition(def)
	if err != nil {
		t.Fatalf("LoadDefinition failed: %v", err)
	}
	if program.Blank() != '_' {
		t.Errorf("Expected blank '_', got %q", program.Blank().String())
	}
}
