package report

import (
	"bytes"
	"testing"

	"csvcheck/internal/validator"
)

/*
TestReport verifies severity prefixes, the writer split (diagnostics to err,
completion to out), and emission order.
*/
func TestReport(t *testing.T) {
	var out, errOut bytes.Buffer
	r := New(&out, &errOut)

	r.Report(validator.Diagnostic{
		Kind:    validator.KindFieldType,
		Row:     1,
		Column:  -1,
		Message: "value x is not a valid boolean",
	})
	r.Report(validator.Diagnostic{
		Kind:    validator.KindTrailingSeparator,
		Fatal:   true,
		Row:     2,
		Column:  -1,
		Message: `line ends with separator ","`,
	})

	wantErr := "warning: row 1: FieldTypeError: value x is not a valid boolean\n" +
		"fatal: row 2: TrailingSeparatorError: line ends with separator \",\"\n"
	if errOut.String() != wantErr {
		t.Fatalf("err stream=%q; want %q", errOut.String(), wantErr)
	}
	if out.Len() != 0 {
		t.Fatalf("out stream=%q; want empty", out.String())
	}

	r.Complete("data.csv", validator.Summary{Rows: 10, Warnings: 2, State: validator.StateCompleted})
	wantOut := "validation completed: data.csv (10 rows, 2 warnings)\n"
	if out.String() != wantOut {
		t.Fatalf("out stream=%q; want %q", out.String(), wantOut)
	}
}
