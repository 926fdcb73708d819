package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/turingtoy/pkg/machine"
)

// Metrics exposes prometheus collectors for simulator activity. Attach
// them to an engine via Hooks().
type Metrics struct {
	runs  *prometheus.CounterVec
	steps prometheus.Histogram
	tape  prometheus.Histogram
}

// NewMetrics creates and registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turingtoy_runs_total",
				Help: "Total number of completed runs, by halt cause.",
			},
			[]string{"halt"},
		),
		steps: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "turingtoy_run_steps",
				Help:    "Steps executed per run.",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
		tape: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "turingtoy_tape_cells",
				Help:    "Tape cells materialized per run, input included.",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
	}
	reg.MustRegister(m.runs, m.steps, m.tape)
	return m
}

// Hooks adapts the metrics to the engine's hook points.
func (m *Metrics) Hooks() machine.Hooks {
	return machine.Hooks{
		OnHalt: func(r *machine.Result) {
			m.runs.WithLabelValues(string(r.Halt)).Inc()
			m.steps.Observe(float64(r.Steps))
			m.tape.Observe(float64(r.TapeCells))
		},
	}
}
