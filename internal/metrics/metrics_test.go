package metrics

import (
	"testing"
	"time"
)

type capture struct {
	counters map[string]float64
	observed map[string][]float64
	labels   map[string]Labels
	flushed  int
}

func newCapture() *capture {
	return &capture{
		counters: map[string]float64{},
		observed: map[string][]float64{},
		labels:   map[string]Labels{},
	}
}

func (c *capture) IncCounter(name string, delta float64, labels Labels) {
	c.counters[name] += delta
	c.labels[name] = labels
}

func (c *capture) ObserveSummary(name string, value float64, labels Labels) {
	c.observed[name] = append(c.observed[name], value)
}

func (c *capture) Flush() error {
	c.flushed++
	return nil
}

/*
TestRecordHelpers verifies the metric names, labels, and deltas produced by
the package-level helpers, and that non-positive deltas are dropped.
*/
func TestRecordHelpers(t *testing.T) {
	c := newCapture()
	SetBackend(c)
	defer SetBackend(nopBackend{})

	RecordRun("job1", false, 250*time.Millisecond)
	RecordRows("job1", "processed", 12)
	RecordRows("job1", "processed", 0) // dropped
	RecordDiagnostics("job1", "warning", 3)
	RecordDiagnostics("job1", "fatal", -1) // dropped

	if got := c.counters["csvcheck_runs_total"]; got != 1 {
		t.Fatalf("runs_total=%v; want 1", got)
	}
	if got := c.labels["csvcheck_runs_total"]["status"]; got != "completed" {
		t.Fatalf("run status=%q; want completed", got)
	}
	if got := c.counters["csvcheck_rows_total"]; got != 12 {
		t.Fatalf("rows_total=%v; want 12", got)
	}
	if got := c.counters["csvcheck_diagnostics_total"]; got != 3 {
		t.Fatalf("diagnostics_total=%v; want 3", got)
	}
	if got := c.observed["csvcheck_run_duration_seconds"]; len(got) != 1 || got[0] != 0.25 {
		t.Fatalf("duration observations=%v; want [0.25]", got)
	}

	RecordRun("job1", true, time.Second)
	if got := c.labels["csvcheck_runs_total"]["status"]; got != "aborted" {
		t.Fatalf("run status=%q; want aborted", got)
	}

	if err := Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if c.flushed != 1 {
		t.Fatalf("flushed=%d; want 1", c.flushed)
	}
}

/*
TestSetBackendNil verifies that installing nil keeps the existing backend.
*/
func TestSetBackendNil(t *testing.T) {
	c := newCapture()
	SetBackend(c)
	defer SetBackend(nopBackend{})

	SetBackend(nil)
	RecordRows("job", "processed", 1)
	if c.counters["csvcheck_rows_total"] != 1 {
		t.Fatalf("nil SetBackend replaced the backend")
	}
}
