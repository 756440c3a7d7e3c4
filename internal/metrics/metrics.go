// Package metrics counts what the extraction stages did and exports it in
// the Prometheus text format.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

// Outcome is the fate of one work item.
type Outcome string

// Item outcomes.
const (
	OutcomeAppended Outcome = "appended"
	OutcomeSkipped  Outcome = "skipped"
	OutcomeDropped  Outcome = "dropped"
	OutcomeFailed   Outcome = "failed"
)

// Recorder holds the collectors of one run. A nil Recorder ignores every
// call.
type Recorder struct {
	registry   *prometheus.Registry
	items      *prometheus.CounterVec
	recoveries *prometheus.CounterVec
	deadlines  *prometheus.CounterVec
	memory     prometheus.Gauge
}

// NewRecorder registers the collectors on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		items: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rocqtrace_items_total",
			Help: "Work items handled, by stage and outcome.",
		}, []string{"stage", "outcome"}),
		recoveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rocqtrace_recoveries_total",
			Help: "Session recoveries, by stage and reason.",
		}, []string{"stage", "reason"}),
		deadlines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rocqtrace_deadline_exceeded_total",
			Help: "Operations cut by their deadline, by label.",
		}, []string{"label"}),
		memory: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rocqtrace_memory_pressure_ratio",
			Help: "Last sampled fraction of system memory in use.",
		}),
	}

	r.registry.MustRegister(r.items, r.recoveries, r.deadlines, r.memory)

	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}

	return r.registry
}

// Item counts one work item of stage.
func (r *Recorder) Item(stage m.Stage, outcome Outcome) {
	if r == nil {
		return
	}

	r.items.WithLabelValues(string(stage), string(outcome)).Inc()
}

// Recovered counts one session recovery.
func (r *Recorder) Recovered(stage m.Stage, reason string) {
	if r == nil {
		return
	}

	r.recoveries.WithLabelValues(string(stage), reason).Inc()
}

// DeadlineExceeded counts one operation cut by its deadline.
func (r *Recorder) DeadlineExceeded(label string) {
	if r == nil {
		return
	}

	r.deadlines.WithLabelValues(label).Inc()
}

// MemoryPressure records the last memory sample.
func (r *Recorder) MemoryPressure(ratio float64) {
	if r == nil {
		return
	}

	r.memory.Set(ratio)
}

// WriteTextfile writes every metric to path for the node exporter textfile
// collector. The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create metrics directory: %w", err)
	}

	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}

	return nil
}
