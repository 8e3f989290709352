// Package validator implements the streaming validation engine: sequential
// line consumption, structural grammar checks, header-to-schema
// reconciliation, per-row shape checking, and per-field type validation.
//
// The engine is fully sequential. Rows are validated in file order and
// diagnostics are emitted in that same order. Structural, header, and shape
// faults are fatal and halt the run after one diagnostic; field type faults
// are reported and the run continues.
package validator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/zeebo/xxh3"

	"csvcheck/internal/config"
	"csvcheck/internal/datasource/file"
	"csvcheck/internal/metrics"
	"csvcheck/internal/scanner"
	"csvcheck/internal/schema"
)

// State is the engine's validation phase.
type State int

const (
	StateIdle State = iota
	StateHeaderPending
	StateRowProcessing
	StateCompleted
	StateAborted
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHeaderPending:
		return "header-pending"
	case StateRowProcessing:
		return "row-processing"
	case StateCompleted:
		return "completed"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Summary is the explicit result of a run, collected alongside the printed
// diagnostics. Fatal is nil when the run completed.
type Summary struct {
	Rows     int // data rows examined
	Warnings int // non-fatal diagnostics emitted
	Fatal    *Diagnostic
	State    State
}

// Runner drives one or more validation runs with a fixed configuration and
// schema registry. Configuration and schema are explicit values constructed
// once; there is no ambient state, so runners are independent and test runs
// can execute in parallel.
type Runner struct {
	cfg  config.Config
	reg  schema.Registry
	sink Sink
	job  string

	fold  bool
	dedup bool
}

// New constructs a Runner. sink receives every diagnostic in file order; job
// labels the run in metrics.
func New(cfg config.Config, reg schema.Registry, sink Sink, job string) *Runner {
	if job == "" {
		job = "csvcheck"
	}
	return &Runner{
		cfg:   cfg,
		reg:   reg,
		sink:  sink,
		job:   job,
		fold:  cfg.Options.Bool("fold_headers", false),
		dedup: cfg.Options.Bool("detect_duplicates", false),
	}
}

// Run opens path and validates it. The open failure path emits a fatal
// IOError diagnostic like any other fatal fault. The returned error is
// non-nil only for context cancellation; validation verdicts live in the
// Summary and the emitted diagnostics.
func (r *Runner) Run(ctx context.Context, path string) (Summary, error) {
	rc, err := file.NewLocal(path).Open(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Summary{State: StateAborted}, err
		}
		d := Diagnostic{
			Kind:    KindIO,
			Fatal:   true,
			Row:     -1,
			Column:  -1,
			Message: err.Error(),
		}
		r.sink.Report(d)
		sum := Summary{Fatal: &d, State: StateAborted}
		r.record(sum, 0)
		return sum, nil
	}
	return r.RunReader(ctx, rc)
}

// RunReader validates the lines of rc, which the runner closes on every exit
// path. Splitting this from Run keeps the engine independent of how the input
// was opened.
func (r *Runner) RunReader(ctx context.Context, rc io.ReadCloser) (Summary, error) {
	start := time.Now()
	sum, err := r.run(ctx, scanner.New(rc))
	r.record(sum, time.Since(start))
	return sum, err
}

// record pushes run counters to the metrics backend.
func (r *Runner) record(sum Summary, d time.Duration) {
	metrics.RecordRun(r.job, sum.Fatal != nil, d)
	metrics.RecordRows(r.job, "processed", int64(sum.Rows))
	metrics.RecordDiagnostics(r.job, "warning", int64(sum.Warnings))
	if sum.Fatal != nil {
		metrics.RecordDiagnostics(r.job, "fatal", 1)
	}
}

// run is the orchestration loop and state machine:
//
//	Idle → HeaderPending (when configured) → RowProcessing → Completed
//
// with any fatal fault transitioning directly to Aborted.
func (r *Runner) run(ctx context.Context, sc *scanner.Scanner) (Summary, error) {
	defer sc.Close()

	sum := Summary{State: StateIdle}

	abort := func(d Diagnostic) Summary {
		r.sink.Report(d)
		sum.Fatal = &d
		sum.State = StateAborted
		return sum
	}

	var headers []string
	if r.cfg.HasHeaders {
		sum.State = StateHeaderPending
	} else {
		// External header list; the config linter verifies it against the
		// registry, this re-check keeps the engine safe when called directly.
		headers = r.cfg.Columns
		for i, h := range headers {
			if _, ok := r.reg.Lookup(h); !ok {
				return abort(Diagnostic{
					Kind:    KindUnrecognizedHeader,
					Fatal:   true,
					Row:     -1,
					Column:  i,
					Header:  h,
					Value:   h,
					Message: fmt.Sprintf("configured column %q is not in the schema; known headers: %v", h, r.reg.Headers()),
				}), nil
			}
		}
		sum.State = StateRowProcessing
	}

	var seen map[uint64]int
	if r.dedup {
		seen = make(map[uint64]int)
	}

	for {
		line, err := sc.Scan(ctx)
		if err != nil {
			if err == io.EOF {
				sum.State = StateCompleted
				return sum, nil
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				sum.State = StateAborted
				return sum, err
			}
			// The scanner wraps the failing row index into the error text.
			return abort(Diagnostic{
				Kind:    KindIO,
				Fatal:   true,
				Row:     -1,
				Column:  -1,
				Message: err.Error(),
			}), nil
		}

		text := strings.TrimSpace(line.Text)
		if r.cfg.Terminator != "" {
			text = strings.TrimSuffix(text, r.cfg.Terminator)
		}

		if kind, msg := structuralFault(text, r.cfg.Separator); kind != "" {
			return abort(Diagnostic{
				Kind:    kind,
				Fatal:   true,
				Row:     line.Index,
				Column:  -1,
				Value:   text,
				Message: msg,
			}), nil
		}

		switch sum.State {
		case StateHeaderPending:
			h, d := r.resolveHeader(text, line.Index)
			if d != nil {
				return abort(*d), nil
			}
			headers = h
			sum.State = StateRowProcessing

		case StateRowProcessing:
			if d := r.validateRow(text, line.Index, headers, seen, &sum); d != nil {
				return abort(*d), nil
			}
		}
	}
}

// validateRow checks one data row: shape against the header count, duplicate
// detection when enabled, then every field against its schema type. Shape
// faults are fatal and returned; field faults and duplicates are non-fatal,
// reported through the sink, and counted in the summary.
func (r *Runner) validateRow(text string, rowIx int, headers []string, seen map[uint64]int, sum *Summary) *Diagnostic {
	fields := splitFields(text, r.cfg.Separator)

	if len(fields) > len(headers) {
		return &Diagnostic{
			Kind:    KindExtraColumns,
			Fatal:   true,
			Row:     rowIx,
			Column:  -1,
			Message: fmt.Sprintf("row has %d fields; expected %d", len(fields), len(headers)),
		}
	}
	if len(fields) < len(headers) {
		return &Diagnostic{
			Kind:    KindMissingColumns,
			Fatal:   true,
			Row:     rowIx,
			Column:  -1,
			Message: fmt.Sprintf("row has %d fields; expected %d", len(fields), len(headers)),
		}
	}

	if seen != nil {
		h := xxh3.HashString(text)
		if first, dup := seen[h]; dup {
			d := Diagnostic{
				Kind:    KindDuplicateRow,
				Row:     rowIx,
				Column:  -1,
				Value:   text,
				Message: fmt.Sprintf("row duplicates row %d", first),
			}
			r.sink.Report(d)
			sum.Warnings++
		} else {
			seen[h] = rowIx
		}
	}

	for i, f := range fields {
		ft, ok := r.reg.Lookup(headers[i])
		if !ok {
			// Headers were reconciled against the registry before any data
			// row; a miss here is unreachable, but stay non-fatal like any
			// field finding if it ever happens.
			continue
		}
		if out := checkField(f, ft, r.cfg.Delimiter); !out.OK {
			r.sink.Report(Diagnostic{
				Kind:     KindFieldType,
				Row:      rowIx,
				Column:   i,
				Header:   headers[i],
				Expected: ft,
				Value:    f,
				Message:  out.Message,
			})
			sum.Warnings++
		}
	}

	sum.Rows++
	return nil
}
