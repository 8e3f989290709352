// Package report renders validation diagnostics as human-readable lines.
//
// Fatal and non-fatal findings go to an error writer, one line per finding,
// in the order they were produced. A single completion notice goes to the
// output writer when a run finishes without a fatal fault.
package report

import (
	"fmt"
	"io"

	"csvcheck/internal/validator"
)

// Reporter writes diagnostics to err and the completion notice to out.
type Reporter struct {
	out io.Writer
	err io.Writer
}

// New returns a Reporter over the given writers.
func New(out, err io.Writer) *Reporter {
	return &Reporter{out: out, err: err}
}

// Report writes one diagnostic line, prefixed with its severity. It
// implements validator.Sink.
func (r *Reporter) Report(d validator.Diagnostic) {
	severity := "warning"
	if d.Fatal {
		severity = "fatal"
	}
	fmt.Fprintf(r.err, "%s: %s\n", severity, d.String())
}

// Complete writes the single completion notice for a successful run.
func (r *Reporter) Complete(name string, sum validator.Summary) {
	fmt.Fprintf(r.out, "validation completed: %s (%d rows, %d warnings)\n",
		name, sum.Rows, sum.Warnings)
}
