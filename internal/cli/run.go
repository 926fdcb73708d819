package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/turingtoy"
	"github.com/aretw0/turingtoy/internal/logging"
	"github.com/aretw0/turingtoy/internal/presentation/tui"
	"github.com/aretw0/turingtoy/pkg/machine"
)

// RunOptions carries the flags of the run command.
type RunOptions struct {
	MachinePath string
	Input       string
	// MaxSteps < 0 means no budget.
	MaxSteps int
	Trace    bool
	JSON     bool
	Pretty   bool
	LogLevel string
}

// Run loads the description file, executes it and prints the outcome.
// Exit semantics: an error is returned for broken descriptions or I/O;
// a machine that merely rejects its input is a normal, zero-error
// outcome.
func Run(opts RunOptions) error {
	logger := logging.New(logging.ParseLevel(opts.LogLevel))
	sim := turingtoy.New(turingtoy.WithLogger(logger))

	description, err := os.ReadFile(opts.MachinePath)
	if err != nil {
		return fmt.Errorf("failed to read machine description: %w", err)
	}

	program, err := sim.Load(description)
	if err != nil {
		return describeValidation(err)
	}

	limit := machine.NoLimit
	if opts.MaxSteps >= 0 {
		limit = machine.StepLimit(opts.MaxSteps)
	}

	result, err := sim.Run(program, opts.Input, limit)
	if err != nil {
		return err
	}

	switch {
	case opts.JSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if !opts.Trace {
			result.Trace = nil
		}
		return enc.Encode(result)

	case opts.Pretty:
		report := tui.Report(opts.Input, result)
		if tui.IsTerminal() {
			render := tui.NewRenderer()
			if out, err := render(report); err == nil {
				fmt.Print(out)
				return nil
			}
		}
		fmt.Print(report)
		return nil

	default:
		if opts.Trace {
			tui.WriteTrace(os.Stdout, result)
		}
		fmt.Println(result.Output)
		if !result.Accepted {
			fmt.Fprintf(os.Stderr, "not accepted (%s after %d steps)\n", result.Halt, result.Steps)
		}
		return nil
	}
}

// Validate loads the description file and reports every validation
// failure it can.
func Validate(path string) error {
	description, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read machine description: %w", err)
	}

	if _, err := turingtoy.Load(description); err != nil {
		return describeValidation(err)
	}

	fmt.Println("ok")
	return nil
}

func describeValidation(err error) error {
	if details := machine.ValidationErrors(err); details != nil {
		for _, d := range details {
			fmt.Fprintf(os.Stderr, "- %s\n", d.Error())
		}
		return fmt.Errorf("invalid machine description (%d errors)", len(details))
	}
	return fmt.Errorf("invalid machine description: %w", err)
}
