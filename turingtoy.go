package turingtoy

import (
	"log/slog"

	"github.com/aretw0/turingtoy/internal/compiler"
	"github.com/aretw0/turingtoy/internal/logging"
	"github.com/aretw0/turingtoy/internal/runtime"
	"github.com/aretw0/turingtoy/internal/validator"
	"github.com/aretw0/turingtoy/pkg/machine"
)

// Version of the turingtoy library.
var Version = "0.3.0"

// Simulator is the high-level entry point. It wraps the internal
// compiler, validator and runtime behind a small API for consumers.
// The zero-cost default is fine for most uses; options attach a logger
// or execution hooks.
type Simulator struct {
	engine *runtime.Engine
	logger *slog.Logger
	hooks  machine.Hooks
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger injects a structured logger, used by the engine for halt
// diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) { s.logger = l }
}

// WithHooks registers per-step and per-halt hooks (see machine.Hooks).
func WithHooks(h machine.Hooks) Option {
	return func(s *Simulator) { s.hooks = h }
}

// New creates a Simulator.
func New(opts ...Option) *Simulator {
	s := &Simulator{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	s.engine = runtime.New(runtime.WithLogger(s.logger), runtime.WithHooks(s.hooks))
	return s
}

// Load parses and validates a machine description (YAML or JSON).
// Loading is pure: the same description always yields a program with
// identical behavior, and a failed load returns no partial program.
func (s *Simulator) Load(description []byte) (*machine.Program, error) {
	def, err := compiler.Parse(description)
	if err != nil {
		return nil, err
	}
	return validator.Validate(def)
}

// LoadDefinition validates an already-parsed definition.
func (s *Simulator) LoadDefinition(def *machine.Definition) (*machine.Program, error) {
	return validator.Validate(def)
}

// Run executes a validated program on input under the given step
// limit.
func (s *Simulator) Run(program *machine.Program, input string, limit machine.StepLimit) (*machine.Result, error) {
	return s.engine.Run(program, input, limit)
}

// RunDescription loads a description and runs it in one call.
func (s *Simulator) RunDescription(description []byte, input string, limit machine.StepLimit) (*machine.Result, error) {
	program, err := s.Load(description)
	if err != nil {
		return nil, err
	}
	return s.Run(program, input, limit)
}

// Load parses and validates a description with a default Simulator.
func Load(description []byte) (*machine.Program, error) {
	return New().Load(description)
}

// Run loads a description and executes it with a default Simulator.
func Run(description []byte, input string, limit machine.StepLimit) (*machine.Result, error) {
	return New().RunDescription(description, input, limit)
}
