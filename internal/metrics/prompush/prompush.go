// Package prompush implements a Prometheus Pushgateway backend for the
// metrics package.
//
// It adapts the generic metrics.Backend interface to Prometheus by using
// client_golang collectors and pushing them to a Pushgateway instead of
// exposing a scrape endpoint, which suits a short-lived CLI process. All
// Prometheus-specific dependencies live here so the engine can swap backends
// without changes.
package prompush

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"csvcheck/internal/metrics"
)

// Backend is a Prometheus Pushgateway metrics backend.
type Backend struct {
	gatewayURL string // e.g. http://pushgateway:9091
	jobName    string // Pushgateway "job" group
	reg        *prometheus.Registry

	runCounter  *prometheus.CounterVec // "csvcheck_runs_total"
	runDuration *prometheus.SummaryVec // "csvcheck_run_duration_seconds"
	rowCounter  *prometheus.CounterVec // "csvcheck_rows_total"
	diagCounter *prometheus.CounterVec // "csvcheck_diagnostics_total"
}

// NewBackend constructs a Prometheus Pushgateway backend.
// jobName: the Pushgateway "job" name. gatewayURL: base URL of the server.
func NewBackend(jobName, gatewayURL string) (*Backend, error) {
	if gatewayURL == "" {
		return nil, fmt.Errorf("prompush: gateway URL is required")
	}
	if jobName == "" {
		jobName = "csvcheck"
	}

	reg := prometheus.NewRegistry()

	runCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "csvcheck_runs_total",
			Help: "Total number of validation runs, partitioned by job and outcome.",
		},
		[]string{"job", "status"},
	)
	runDuration := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "csvcheck_run_duration_seconds",
			Help:       "Duration of validation runs in seconds, partitioned by job and outcome.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"job", "status"},
	)
	rowCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "csvcheck_rows_total",
			Help: "Row-level counts per kind (processed, etc.).",
		},
		[]string{"job", "kind"},
	)
	diagCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "csvcheck_diagnostics_total",
			Help: "Diagnostic counts per kind (warning, fatal).",
		},
		[]string{"job", "kind"},
	)

	if err := reg.Register(runCounter); err != nil {
		return nil, fmt.Errorf("prompush: register run counter: %w", err)
	}
	if err := reg.Register(runDuration); err != nil {
		return nil, fmt.Errorf("prompush: register run summary: %w", err)
	}
	if err := reg.Register(rowCounter); err != nil {
		return nil, fmt.Errorf("prompush: register row counter: %w", err)
	}
	if err := reg.Register(diagCounter); err != nil {
		return nil, fmt.Errorf("prompush: register diagnostic counter: %w", err)
	}

	return &Backend{
		gatewayURL:  gatewayURL,
		jobName:     jobName,
		reg:         reg,
		runCounter:  runCounter,
		runDuration: runDuration,
		rowCounter:  rowCounter,
		diagCounter: diagCounter,
	}, nil
}

func (b *Backend) IncCounter(name string, delta float64, labels metrics.Labels) {
	switch name {
	case "csvcheck_runs_total":
		b.runCounter.WithLabelValues(labels["job"], labels["status"]).Add(delta)
	case "csvcheck_rows_total":
		b.rowCounter.WithLabelValues(labels["job"], labels["kind"]).Add(delta)
	case "csvcheck_diagnostics_total":
		b.diagCounter.WithLabelValues(labels["job"], labels["kind"]).Add(delta)
	default:
		// unknown metric name: ignore
	}
}

func (b *Backend) ObserveSummary(name string, value float64, labels metrics.Labels) {
	if name != "csvcheck_run_duration_seconds" {
		return
	}
	b.runDuration.WithLabelValues(labels["job"], labels["status"]).Observe(value)
}

// Flush pushes the current registry to the Pushgateway.
func (b *Backend) Flush() error {
	return push.New(b.gatewayURL, b.jobName).
		Gatherer(b.reg).
		Push()
}
