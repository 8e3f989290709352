// Package metrics provides a small, backend-agnostic abstraction for
// recording operational metrics from validation runs.
//
// The package is intentionally minimal:
//
//   - It exposes a narrow interface (Backend) focused on counters and a
//     duration summary.
//   - It provides a global, pluggable backend that defaults to a no-op
//     implementation, so metrics are always safe to call even when no real
//     backend is configured.
//   - Concrete metric systems stay isolated in subpackages; the engine
//     depends only on this interface.
package metrics

import "time"

// Labels are string key/value pairs attached to a metric.
type Labels map[string]string

// Backend is the minimal interface for metrics backends.
type Backend interface {
	// IncCounter increments a counter by delta.
	IncCounter(name string, delta float64, labels Labels)
	// ObserveSummary records a value in a duration-style metric.
	ObserveSummary(name string, value float64, labels Labels)
	// Flush pushes or flushes metrics, if the backend needs it.
	Flush() error
}

// nopBackend is used by default so metrics are optional.
type nopBackend struct{}

func (nopBackend) IncCounter(name string, delta float64, labels Labels)     {}
func (nopBackend) ObserveSummary(name string, value float64, labels Labels) {}
func (nopBackend) Flush() error                                             { return nil }

var backend Backend = nopBackend{}

// SetBackend installs a concrete backend. Passing nil keeps the existing one.
func SetBackend(b Backend) {
	if b == nil {
		return
	}
	backend = b
}

// Flush delegates to the current backend.
func Flush() error {
	return backend.Flush()
}

// RecordRun records one validation run: outcome counter plus duration.
func RecordRun(job string, fatal bool, d time.Duration) {
	status := "completed"
	if fatal {
		status = "aborted"
	}
	lbls := Labels{"job": job, "status": status}
	backend.IncCounter("csvcheck_runs_total", 1, lbls)
	backend.ObserveSummary("csvcheck_run_duration_seconds", d.Seconds(), lbls)
}

// RecordRows increments the row counter for the given job and kind
// (e.g. "processed").
func RecordRows(job, kind string, delta int64) {
	if delta <= 0 {
		return
	}
	backend.IncCounter("csvcheck_rows_total", float64(delta), Labels{
		"job":  job,
		"kind": kind,
	})
}

// RecordDiagnostics increments the diagnostic counter for the given job and
// kind ("warning" or "fatal").
func RecordDiagnostics(job, kind string, delta int64) {
	if delta <= 0 {
		return
	}
	backend.IncCounter("csvcheck_diagnostics_total", float64(delta), Labels{
		"job":  job,
		"kind": kind,
	})
}
