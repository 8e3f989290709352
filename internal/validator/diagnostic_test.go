package validator

import (
	"testing"

	"csvcheck/internal/schema"
)

/*
TestDiagnosticString pins the rendered forms: field-scoped, row-scoped, and
file-level diagnostics.
*/
func TestDiagnosticString(t *testing.T) {
	cases := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{
			name: "field scoped",
			d: Diagnostic{
				Kind:     KindFieldType,
				Row:      2,
				Column:   1,
				Header:   "age",
				Expected: schema.TypeInteger,
				Value:    "'abc'",
				Message:  "value 'abc' is outside the accepted range 1-79",
			},
			want: "row 2, column 1 (age): FieldTypeError: expected integer: value 'abc' is outside the accepted range 1-79",
		},
		{
			name: "row scoped",
			d: Diagnostic{
				Kind:    KindExtraColumns,
				Fatal:   true,
				Row:     3,
				Column:  -1,
				Message: "row has 5 fields; expected 4",
			},
			want: "row 3: ExtraColumnsError: row has 5 fields; expected 4",
		},
		{
			name: "file level",
			d: Diagnostic{
				Kind:    KindIO,
				Fatal:   true,
				Row:     -1,
				Column:  -1,
				Message: "open in.csv: no such file",
			},
			want: "IOError: open in.csv: no such file",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.d.String(); got != c.want {
				t.Fatalf("String()=%q; want %q", got, c.want)
			}
		})
	}
}
