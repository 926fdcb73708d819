package runtime

import (
	"log/slog"

	"github.com/aretw0/turingtoy/internal/logging"
	"github.com/aretw0/turingtoy/pkg/machine"
)

// Engine executes validated programs. It is stateless between runs:
// every Run builds its own tape and trace, so one Engine may serve many
// concurrent runs of shared (immutable) programs.
type Engine struct {
	logger *slog.Logger
	hooks  machine.Hooks
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a structured logger. The engine logs one Debug
// line per halt, never per step.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithHooks attaches execution hooks (metrics, tracing sinks).
func WithHooks(h machine.Hooks) Option {
	return func(e *Engine) { e.hooks = h }
}

// New creates an engine.
func New(opts ...Option) *Engine {
	e := &Engine{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes program on input until it halts or the step limit runs
// out. It returns an error only when the input violates the program's
// declared alphabet; every other outcome (acceptance, getting stuck,
// exhausting the budget) is a well-formed Result.
//
// Given identical (program, input, limit) the result is bit-identical:
// there is no randomness, I/O or concurrency in the loop.
func (e *Engine) Run(program *machine.Program, input string, limit machine.StepLimit) (*machine.Result, error) {
	if err := program.CheckInput(input); err != nil {
		return nil, err
	}

	tape := NewTape(input, program.Blank())
	head := 0
	state := program.Start()
	steps := 0

	var trace machine.Trace
	var cause machine.HaltCause

loop:
	for {
		// Halt checks, in order: acceptance wins over the budget, and
		// both are decided before the tape is touched.
		switch {
		case program.IsFinal(state):
			cause = machine.HaltAccepted
			break loop
		case limit.Bounded() && steps >= int(limit):
			cause = machine.HaltBudget
			break loop
		}

		head = tape.Seek(head)
		symbol := tape.Read(head)

		inst, ok := program.Lookup(state, symbol)
		if !ok {
			// Stuck: no transition for (state, symbol). Nothing was
			// mutated and no trace entry is recorded for this attempt.
			cause = machine.HaltStuck
			break loop
		}

		// Snapshot at decision time, before the instruction applies.
		entry := machine.TraceEntry{
			State:       state,
			Symbol:      symbol.String(),
			Position:    head,
			Tape:        tape.String(),
			Instruction: inst,
		}
		trace = append(trace, entry)
		if e.hooks.OnStep != nil {
			e.hooks.OnStep(entry)
		}

		switch in := inst.(type) {
		case machine.Move:
			head += in.Direction.Delta()
			if in.Next != "" {
				state = in.Next
			}
		case machine.Write:
			if in.HasSymbol {
				tape.Set(head, in.Symbol)
			}
			head += in.Direction.Delta()
			state = in.Next
		}

		steps++
	}

	result := &machine.Result{
		Output:    tape.Output(),
		Trace:     trace,
		Accepted:  program.IsFinal(state),
		Halt:      cause,
		Steps:     steps,
		TapeCells: tape.Len(),
	}

	e.logger.Debug("run halted",
		"cause", result.Halt,
		"accepted", result.Accepted,
		"steps", result.Steps,
		"tape_cells", result.TapeCells,
	)
	if e.hooks.OnHalt != nil {
		e.hooks.OnHalt(result)
	}

	return result, nil
}
