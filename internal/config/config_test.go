package config

import (
	"reflect"
	"strings"
	"testing"
)

/*
TestDecode verifies JSON decoding of a full config, defaulting of a missing
options object to a non-nil map, and error propagation for malformed JSON.
*/
func TestDecode(t *testing.T) {
	in := `{
	  "separator": ",",
	  "delimiter": "'",
	  "terminator": "",
	  "has_headers": true,
	  "options": { "detect_duplicates": true, "fold_headers": false }
	}`
	c, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := Config{
		Separator:  ",",
		Delimiter:  "'",
		HasHeaders: true,
		Options:    Options{"detect_duplicates": true, "fold_headers": false},
	}
	if !reflect.DeepEqual(c, want) {
		t.Fatalf("Decode=%#v; want %#v", c, want)
	}

	// Missing options object still yields a usable map.
	c, err = Decode(strings.NewReader(`{"separator": ";", "has_headers": false, "columns": ["a"]}`))
	if err != nil {
		t.Fatalf("Decode without options: %v", err)
	}
	if c.Options == nil {
		t.Fatalf("Options=nil; want empty map")
	}
	if got := c.Options.Bool("detect_duplicates", false); got {
		t.Fatalf("Bool default=true; want false")
	}

	if _, err := Decode(strings.NewReader(`{"separator": `)); err == nil {
		t.Fatalf("Decode malformed: err=nil; want error")
	}
}

/*
TestOptionsAccessors exercises typed access with defaults: present values,
wrong-typed values, and absent keys.
*/
func TestOptionsAccessors(t *testing.T) {
	o := Options{
		"flag":  true,
		"name":  "x",
		"count": float64(3), // JSON numbers decode as float64
		"wrong": "nope",
	}

	if !o.Bool("flag", false) {
		t.Fatalf("Bool(flag)=false; want true")
	}
	if o.Bool("wrong", false) {
		t.Fatalf("Bool(wrong)=true; want default false")
	}
	if got := o.String("name", "d"); got != "x" {
		t.Fatalf("String(name)=%q; want x", got)
	}
	if got := o.String("missing", "d"); got != "d" {
		t.Fatalf("String(missing)=%q; want d", got)
	}
	if got := o.Int("count", 0); got != 3 {
		t.Fatalf("Int(count)=%d; want 3", got)
	}
	if got := o.Int("wrong", 9); got != 9 {
		t.Fatalf("Int(wrong)=%d; want default 9", got)
	}
}

/*
TestOptionsUnmarshalNull verifies that a literal null options object decodes
to an empty, non-nil map.
*/
func TestOptionsUnmarshalNull(t *testing.T) {
	var o Options
	if err := o.UnmarshalJSON([]byte("null")); err != nil {
		t.Fatalf("UnmarshalJSON(null): %v", err)
	}
	if o == nil || len(o) != 0 {
		t.Fatalf("o=%#v; want empty map", o)
	}
}
