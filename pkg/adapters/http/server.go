package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/turingtoy"
	"github.com/aretw0/turingtoy/pkg/machine"
	"github.com/aretw0/turingtoy/pkg/ports"
)

// Server exposes the simulator over a small REST surface. Transport
// only: it adds no semantics on top of the (output, trace, accepted)
// triple.
type Server struct {
	Sim   *turingtoy.Simulator
	Store ports.ResultStore // optional; enables GET /v1/results
}

// Option configures the handler.
type Option func(*Server)

// WithStore enables result persistence and the results endpoints.
func WithStore(store ports.ResultStore) Option {
	return func(s *Server) { s.Store = store }
}

// NewHandler creates the HTTP handler for the simulator.
func NewHandler(sim *turingtoy.Simulator, opts ...Option) http.Handler {
	server := &Server{Sim: sim}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Get("/healthz", server.GetHealth)
	r.Post("/v1/validate", server.Validate)
	r.Post("/v1/run", server.Run)
	r.Get("/v1/results/{id}", server.GetResult)
	r.Get("/v1/results", server.ListResults)

	return enableCORS(r)
}

// RunRequest is the POST /v1/run body. Machine is the raw description
// (inline JSON object or a YAML/JSON string) handed verbatim to the
// loader.
type RunRequest struct {
	Machine  json.RawMessage `json:"machine"`
	Input    string          `json:"input"`
	MaxSteps *int            `json:"max_steps,omitempty"`
	Trace    bool            `json:"trace,omitempty"`
	// ID persists the outcome under this key when a store is
	// configured.
	ID string `json:"id,omitempty"`
}

// RunResponse mirrors machine.Result; the trace is included only on
// request.
type RunResponse struct {
	Output    string            `json:"output"`
	Accepted  bool              `json:"accepted"`
	Halt      machine.HaltCause `json:"halt"`
	Steps     int               `json:"steps"`
	TapeCells int               `json:"tape_cells"`
	Trace     machine.Trace     `json:"trace,omitempty"`
	ID        string            `json:"id,omitempty"`
}

// ValidateRequest is the POST /v1/validate body.
type ValidateRequest struct {
	Machine json.RawMessage `json:"machine"`
}

// ErrorResponse reports validation failures as structured data.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// Run handles POST /v1/run.
func (s *Server) Run(w http.ResponseWriter, r *http.Request) {
	var body RunRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		slog.Warn("Run: Invalid request body", "error", err)
		return
	}

	program, err := s.Sim.Load(machineBytes(body.Machine))
	if err != nil {
		writeValidationError(w, err)
		return
	}

	limit := machine.NoLimit
	if body.MaxSteps != nil {
		limit = machine.StepLimit(*body.MaxSteps)
	}

	result, err := s.Sim.Run(program, body.Input, limit)
	if err != nil {
		var inputErr *machine.InputError
		if errors.As(err, &inputErr) {
			writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
			return
		}
		http.Error(w, fmt.Sprintf("Run error: %v", err), http.StatusInternalServerError)
		slog.Error("Run failed", "error", err)
		return
	}

	if s.Store != nil && body.ID != "" {
		if err := s.Store.Save(r.Context(), body.ID, result); err != nil {
			http.Error(w, fmt.Sprintf("Store error: %v", err), http.StatusInternalServerError)
			slog.Error("Run: result save failed", "error", err, "id", body.ID)
			return
		}
	}

	resp := RunResponse{
		Output:    result.Output,
		Accepted:  result.Accepted,
		Halt:      result.Halt,
		Steps:     result.Steps,
		TapeCells: result.TapeCells,
		ID:        body.ID,
	}
	if body.Trace {
		resp.Trace = result.Trace
	}
	writeJSON(w, http.StatusOK, resp)
}

// Validate handles POST /v1/validate.
func (s *Server) Validate(w http.ResponseWriter, r *http.Request) {
	var body ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		slog.Warn("Validate: Invalid request body", "error", err)
		return
	}

	if _, err := s.Sim.Load(machineBytes(body.Machine)); err != nil {
		writeValidationError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetResult handles GET /v1/results/{id}.
func (s *Server) GetResult(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		http.Error(w, "No result store configured", http.StatusNotFound)
		return
	}

	id := chi.URLParam(r, "id")
	result, err := s.Store.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, ports.ErrResultNotFound) {
			http.Error(w, "Result not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Store error: %v", err), http.StatusInternalServerError)
		slog.Error("GetResult failed", "error", err, "id", id)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ListResults handles GET /v1/results.
func (s *Server) ListResults(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		http.Error(w, "No result store configured", http.StatusNotFound)
		return
	}

	ids, err := s.Store.List(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Store error: %v", err), http.StatusInternalServerError)
		slog.Error("ListResults failed", "error", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{"ids": ids})
}

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": turingtoy.Version,
	})
}

// machineBytes accepts the description either as an inline JSON object
// (passed through; the loader parses JSON) or as a JSON string holding
// YAML.
func machineBytes(raw json.RawMessage) []byte {
	var inline string
	if err := json.Unmarshal(raw, &inline); err == nil {
		return []byte(inline)
	}
	return raw
}

func writeValidationError(w http.ResponseWriter, err error) {
	resp := ErrorResponse{Error: "invalid machine description"}
	if details := machine.ValidationErrors(err); details != nil {
		for _, d := range details {
			resp.Details = append(resp.Details, d.Error())
		}
	} else {
		resp.Details = []string{err.Error()}
	}
	writeJSON(w, http.StatusUnprocessableEntity, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encode failed", "error", err)
	}
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
