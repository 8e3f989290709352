package validator

import (
	"fmt"
	"strings"

	"csvcheck/internal/schema"
)

// Kind identifies the class of a diagnostic.
type Kind string

const (
	KindIO                 Kind = "IOError"
	KindLeadingSeparator   Kind = "LeadingSeparatorError"
	KindEmptyField         Kind = "EmptyFieldError"
	KindTrailingSeparator  Kind = "TrailingSeparatorError"
	KindUnrecognizedHeader Kind = "UnrecognizedHeaderError"
	KindExtraColumns       Kind = "ExtraColumnsError"
	KindMissingColumns     Kind = "MissingColumnsError"
	KindFieldType          Kind = "FieldTypeError"
	KindDuplicateRow       Kind = "DuplicateRowError"
)

// Diagnostic is one validation finding. Fatal diagnostics halt the run;
// non-fatal ones are surfaced and the run continues.
//
// Row is the zero-based row index, or -1 for file-level findings. Column is
// the zero-based field position, or -1 when the finding is not field-scoped.
type Diagnostic struct {
	Kind     Kind
	Fatal    bool
	Row      int
	Column   int
	Header   string
	Expected schema.FieldType
	Value    string
	Message  string
}

// String renders the diagnostic as a single human-readable line, e.g.
//
//	row 2, column 1 (age): FieldTypeError: expected integer: value "abc" is outside the accepted range 1-79
func (d Diagnostic) String() string {
	var b strings.Builder
	if d.Row >= 0 {
		fmt.Fprintf(&b, "row %d", d.Row)
		if d.Column >= 0 {
			fmt.Fprintf(&b, ", column %d", d.Column)
			if d.Header != "" {
				fmt.Fprintf(&b, " (%s)", d.Header)
			}
		}
		b.WriteString(": ")
	}
	b.WriteString(string(d.Kind))
	b.WriteString(": ")
	if d.Expected != "" {
		fmt.Fprintf(&b, "expected %s: ", d.Expected)
	}
	b.WriteString(d.Message)
	return b.String()
}

// Sink receives diagnostics as they are produced, in file order.
type Sink interface {
	Report(d Diagnostic)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(d Diagnostic)

// Report calls f(d).
func (f SinkFunc) Report(d Diagnostic) { f(d) }
