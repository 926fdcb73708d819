package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/turingtoy/internal/compiler"
	"github.com/aretw0/turingtoy/internal/runtime"
	"github.com/aretw0/turingtoy/internal/validator"
	"github.com/aretw0/turingtoy/pkg/machine"
)

// incrementMachine adds one to a binary number: scan right to the end,
// then flip trailing 1s to 0s until a 0 (or the left edge) absorbs the
// carry.
const incrementMachine = `
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
`

// additionMachine computes a+b for two binary numbers. It consumes the
// second operand digit by digit, accumulating into the first via the
// marker symbols O and I, then rewrites the markers back to digits.
const additionMachine = `
blank: ' '
start_state: right
final_states: [done]
table:
  right:
    '0': R
    '1': R
    '+': R
    'O': R
    'I': R
    ' ': {L: read}
  read:
    '0': {write: ' ', L: have0}
    '1': {write: ' ', L: have1}
    '+': {write: ' ', L: rewrite}
  have0:
    '0': L
    '1': L
    '+': {L: add0}
  have1:
    '0': L
    '1': L
    '+': {L: add1}
  add0:
    'O': L
    'I': L
    '0': {write: O, R: right}
    ' ': {write: O, R: right}
    '1': {write: I, R: right}
  add1:
    'O': L
    'I': L
    '0': {write: I, R: right}
    ' ': {write: I, R: right}
    '1': {write: O, L: carry}
  carry:
    '1': {write: '0', L: carry}
    '0': {write: '1', R: right}
    ' ': {write: '1', R: right}
  rewrite:
    'O': {write: '0', L: rewrite}
    'I': {write: '1', L: rewrite}
    '0': L
    '1': L
    ' ': {R: done}
  done: {}
`

// bounceMachine never halts: it walks right over blanks forever.
const bounceMachine = `
blank: ' '
start_state: walk
final_states: []
table:
  walk:
    ' ': R
`

func mustLoad(t *testing.T, description string) *machine.Program {
	t.Helper()
	def, err := compiler.Parse([]byte(description))
	require.NoError(t, err)
	program, err := validator.Validate(def)
	require.NoError(t, err)
	return program
}

func TestEngine_Increment(t *testing.T) {
	program := mustLoad(t, incrementMachine)
	engine := runtime.New()

	cases := []struct {
		input  string
		output string
		steps  int
	}{
		{"1011", "1100", 8},
		{"111", "1000", 8},
		{"0", "1", 3},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			result, err := engine.Run(program, tc.input, machine.NoLimit)
			require.NoError(t, err)

			assert.Equal(t, tc.output, result.Output)
			assert.True(t, result.Accepted)
			assert.Equal(t, machine.HaltAccepted, result.Halt)
			assert.Equal(t, tc.steps, result.Steps)
			assert.Len(t, result.Trace, tc.steps)
		})
	}
}

func TestEngine_BinaryAddition(t *testing.T) {
	program := mustLoad(t, additionMachine)
	engine := runtime.New()

	result, err := engine.Run(program, "11+1", machine.NoLimit)
	require.NoError(t, err)

	assert.Equal(t, "100", result.Output)
	assert.True(t, result.Accepted)
	assert.Equal(t, machine.HaltAccepted, result.Halt)
	assert.Equal(t, 19, result.Steps)
	assert.Equal(t, 7, result.TapeCells, "one cell prepended and two appended around the input")
}

func TestEngine_StuckLeavesNoTrace(t *testing.T) {
	program := mustLoad(t, `
blank: ' '
start_state: start
final_states: [done]
table:
  start:
    '0': {R: done}
  done: {}
`)
	engine := runtime.New()

	result, err := engine.Run(program, "1", machine.NoLimit)
	require.NoError(t, err)

	assert.Equal(t, machine.HaltStuck, result.Halt)
	assert.False(t, result.Accepted)
	assert.Equal(t, 0, result.Steps)
	assert.Empty(t, result.Trace, "the failed lookup is not a step")
	assert.Equal(t, "1", result.Output, "the tape is untouched")
}

func TestEngine_BudgetExhaustion(t *testing.T) {
	program := mustLoad(t, bounceMachine)
	engine := runtime.New()

	result, err := engine.Run(program, "", machine.StepLimit(10))
	require.NoError(t, err)

	assert.Equal(t, machine.HaltBudget, result.Halt)
	assert.False(t, result.Accepted)
	assert.Equal(t, 10, result.Steps)
	assert.Len(t, result.Trace, 10)
}

func TestEngine_AcceptanceWinsOverBudget(t *testing.T) {
	program := mustLoad(t, incrementMachine)
	engine := runtime.New()

	// The run needs exactly 8 steps; a budget of 8 still accepts because
	// the final-state check comes first.
	result, err := engine.Run(program, "1011", machine.StepLimit(8))
	require.NoError(t, err)

	assert.Equal(t, machine.HaltAccepted, result.Halt)
	assert.True(t, result.Accepted)
	assert.Equal(t, 8, result.Steps)
}

func TestEngine_ZeroBudget(t *testing.T) {
	program := mustLoad(t, bounceMachine)
	engine := runtime.New()

	result, err := engine.Run(program, "", machine.StepLimit(0))
	require.NoError(t, err)

	assert.Equal(t, machine.HaltBudget, result.Halt)
	assert.Equal(t, 0, result.Steps)
	assert.Empty(t, result.Trace)
}

func TestEngine_StartStateAlreadyFinal(t *testing.T) {
	program := mustLoad(t, `
blank: ' '
start_state: done
final_states: [done]
table:
  done: {}
`)
	engine := runtime.New()

	result, err := engine.Run(program, "ab", machine.NoLimit)
	require.NoError(t, err)

	assert.True(t, result.Accepted)
	assert.Equal(t, 0, result.Steps)
	assert.Equal(t, "ab", result.Output)
}

func TestEngine_InputOutsideAlphabet(t *testing.T) {
	program := mustLoad(t, `
blank: ' '
start_state: right
final_states: [done]
alphabet: ['0', '1']
table:
  right:
    '1': R
    '0': R
    ' ': {L: done}
  done: {}
`)
	engine := runtime.New()

	_, err := engine.Run(program, "102", machine.NoLimit)
	require.Error(t, err)

	var inputErr *machine.InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "2", inputErr.Symbol.String())
	assert.Equal(t, 2, inputErr.Position)
}

func TestEngine_TraceMatchesExecution(t *testing.T) {
	program := mustLoad(t, incrementMachine)
	engine := runtime.New()

	result, err := engine.Run(program, "10", machine.NoLimit)
	require.NoError(t, err)
	require.NotEmpty(t, result.Trace)

	first := result.Trace[0]
	assert.Equal(t, machine.State("right"), first.State)
	assert.Equal(t, "1", first.Symbol)
	assert.Equal(t, 0, first.Position)
	assert.Equal(t, "10", first.Tape, "snapshot is taken before the instruction applies")

	// Each entry's symbol is the tape cell under the head in its own
	// snapshot.
	for i, entry := range result.Trace {
		cell := string([]rune(entry.Tape)[entry.Position])
		assert.Equalf(t, entry.Symbol, cell, "entry %d", i)
		assert.NotNil(t, entry.Instruction)
	}
}

func TestEngine_Deterministic(t *testing.T) {
	program := mustLoad(t, additionMachine)
	engine := runtime.New()

	first, err := engine.Run(program, "101+11", machine.NoLimit)
	require.NoError(t, err)
	second, err := engine.Run(program, "101+11", machine.NoLimit)
	require.NoError(t, err)

	require.Equal(t, first, second, "identical inputs must replay identically")
	assert.Equal(t, "1000", first.Output)
}

func TestEngine_EmptyInput(t *testing.T) {
	program := mustLoad(t, incrementMachine)
	engine := runtime.New()

	// On the empty tape the scan immediately sees a blank, moves left,
	// and the carry writes a fresh 1.
	result, err := engine.Run(program, "", machine.NoLimit)
	require.NoError(t, err)

	assert.True(t, result.Accepted)
	assert.Equal(t, "1", result.Output)
}

func TestEngine_Hooks(t *testing.T) {
	program := mustLoad(t, incrementMachine)

	var stepped int
	var halted *machine.Result
	engine := runtime.New(runtime.WithHooks(machine.Hooks{
		OnStep: func(machine.TraceEntry) { stepped++ },
		OnHalt: func(r *machine.Result) { halted = r },
	}))

	result, err := engine.Run(program, "1011", machine.NoLimit)
	require.NoError(t, err)

	assert.Equal(t, result.Steps, stepped)
	require.NotNil(t, halted)
	assert.Equal(t, result, halted)
}
