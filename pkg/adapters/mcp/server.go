package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/turingtoy"
	"github.com/aretw0/turingtoy/pkg/machine"
)

// RunResponse is the structured output of the run_machine tool.
type RunResponse struct {
	Output    string            `json:"output" jsonschema_description:"Final tape contents with outer blanks stripped"`
	Accepted  bool              `json:"accepted" jsonschema_description:"Whether the machine halted in a final state"`
	Halt      machine.HaltCause `json:"halt" jsonschema_description:"Why the run stopped: accepted, stuck or budget-exhausted"`
	Steps     int               `json:"steps" jsonschema_description:"Number of executed steps"`
	TapeCells int               `json:"tape_cells" jsonschema_description:"Tape cells materialized by the run"`
	Trace     machine.Trace     `json:"trace,omitempty" jsonschema_description:"Per-step execution trace, when requested"`
}

// ValidateResponse is the structured output of the validate_machine tool.
type ValidateResponse struct {
	Valid  bool     `json:"valid" jsonschema_description:"Whether the description passed validation"`
	Errors []string `json:"errors,omitempty" jsonschema_description:"Validation failures, when invalid"`
}

// Server exposes the simulator as an MCP server.
type Server struct {
	sim       *turingtoy.Simulator
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(sim *turingtoy.Simulator) *Server {
	s := &Server{
		sim:       sim,
		mcpServer: server.NewMCPServer("turingtoy-mcp", strings.TrimSpace(turingtoy.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: run_machine
	runTool := mcp.NewTool("run_machine",
		mcp.WithDescription("Load a Turing machine description (YAML or JSON) and run it on an input string."),
		mcp.WithString("machine", mcp.Required(), mcp.Description("Machine description: blank, start_state, final_states, table")),
		mcp.WithString("input", mcp.Description("Initial tape contents")),
		mcp.WithNumber("max_steps", mcp.Description("Step budget; omit to run until the machine halts on its own")),
		mcp.WithBoolean("trace", mcp.Description("Include the per-step execution trace in the response")),
		mcp.WithOutputSchema[RunResponse](),
	)
	s.mcpServer.AddTool(runTool, mcp.NewStructuredToolHandler(s.handleRun))

	// TOOL: validate_machine
	validateTool := mcp.NewTool("validate_machine",
		mcp.WithDescription("Validate a Turing machine description without running it."),
		mcp.WithString("machine", mcp.Required(), mcp.Description("Machine description: blank, start_state, final_states, table")),
		mcp.WithOutputSchema[ValidateResponse](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))
}

// runArgs is decoded from the raw tool arguments via mapstructure, so
// numeric types coming from JSON (float64) land cleanly in MaxSteps.
type runArgs struct {
	Machine  string   `mapstructure:"machine"`
	Input    string   `mapstructure:"input"`
	MaxSteps *float64 `mapstructure:"max_steps"`
	Trace    bool     `mapstructure:"trace"`
}

func decodeRunArgs(args map[string]interface{}) (runArgs, error) {
	var out runArgs
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return out, err
	}
	if err := decoder.Decode(args); err != nil {
		return out, fmt.Errorf("invalid arguments: %w", err)
	}
	return out, nil
}

func (s *Server) handleRun(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RunResponse, error) {
	in, err := decodeRunArgs(args)
	if err != nil {
		return RunResponse{}, err
	}

	program, err := s.sim.Load([]byte(in.Machine))
	if err != nil {
		return RunResponse{}, fmt.Errorf("invalid machine description: %w", err)
	}

	limit := machine.NoLimit
	if in.MaxSteps != nil {
		limit = machine.StepLimit(*in.MaxSteps)
	}

	result, err := s.sim.Run(program, in.Input, limit)
	if err != nil {
		return RunResponse{}, fmt.Errorf("run failed: %w", err)
	}

	resp := RunResponse{
		Output:    result.Output,
		Accepted:  result.Accepted,
		Halt:      result.Halt,
		Steps:     result.Steps,
		TapeCells: result.TapeCells,
	}
	if in.Trace {
		resp.Trace = result.Trace
	}
	return resp, nil
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ValidateResponse, error) {
	in, err := decodeRunArgs(args)
	if err != nil {
		return ValidateResponse{}, err
	}

	if _, err := s.sim.Load([]byte(in.Machine)); err != nil {
		resp := ValidateResponse{Valid: false}
		if details := machine.ValidationErrors(err); details != nil {
			for _, d := range details {
				resp.Errors = append(resp.Errors, d.Error())
			}
		} else {
			resp.Errors = []string{err.Error()}
		}
		return resp, nil
	}

	return ValidateResponse{Valid: true}, nil
}
