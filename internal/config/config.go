// Package config defines the canonical, JSON-serializable configuration model
// for a validation run. It is intentionally small, explicit, and dependency-
// free so that configurations can be loaded from disk (or other sources) and
// passed through the program without additional glue code.
//
// Design goals:
//
//  1. Stability: changes to this package should be additive and backwards-
//     compatible whenever possible.
//  2. Clarity: field names in Go mirror the JSON structure of config files.
//  3. Minimalism: no third-party config libraries; decoding is performed by
//     the standard library, with a light Options helper for typed access.
//
// Example:
//
//	{
//	  "separator":   ",",
//	  "delimiter":   "'",
//	  "terminator":  "",
//	  "has_headers": true,
//	  "options":     { "detect_duplicates": true }
//	}
package config

import (
	"encoding/json"
	"fmt"
	"io"
)

// Config describes one validation run. It is fixed for the duration of the
// run; the engine receives a materialized value and is agnostic to how it was
// loaded.
type Config struct {
	// Separator is the token dividing fields within one row (e.g. ",").
	Separator string `json:"separator"`

	// Delimiter optionally encloses individual field values (e.g. "'").
	// Empty means field values are bare.
	Delimiter string `json:"delimiter"`

	// Terminator is the configured end-of-record marker. When set and present
	// at the end of a line it is trimmed before any structural check; it is
	// not otherwise enforced.
	Terminator string `json:"terminator"`

	// HasHeaders indicates that the first row names the columns.
	HasHeaders bool `json:"has_headers"`

	// Columns supplies the column names when HasHeaders is false. Ignored
	// otherwise.
	Columns []string `json:"columns,omitempty"`

	// Options is a free-form bag for engine tuning. Recognized keys:
	//   fold_headers      (bool) strip diacritics from header names before
	//                     schema lookup
	//   detect_duplicates (bool) warn on data rows whose text repeats an
	//                     earlier row
	Options Options `json:"options"`
}

// Decode reads a Config from JSON. A missing or null "options" object decodes
// to a non-nil, empty Options map.
func Decode(r io.Reader) (Config, error) {
	var c Config
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if c.Options == nil {
		c.Options = Options{}
	}
	return c, nil
}

// Options is a small helper to fetch typed values from arbitrary JSON maps
// without introducing third-party configuration libraries. It performs only
// minimal type coercion and returns provided defaults when a key is absent or
// of an unexpected type.
type Options map[string]any

// Bool returns the bool value for key or def if key is missing or not a bool.
func (o Options) Bool(key string, def bool) bool {
	if v, ok := o[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// String returns the string value for key or def if key is missing or not a
// string.
func (o Options) String(key, def string) string {
	if v, ok := o[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// Int returns the int value for key or def. JSON numbers decode as float64,
// so this method accepts float64 and casts to int.
func (o Options) Int(key string, def int) int {
	if v, ok := o[key]; ok {
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		}
	}
	return def
}

// UnmarshalJSON implements json.Unmarshaler so that a missing or null
// "options" object in JSON decodes to a non-nil, empty Options map. This
// removes the need to nil-check Options at call sites.
func (o *Options) UnmarshalJSON(b []byte) error {
	var tmp map[string]any
	if len(b) == 0 || string(b) == "null" {
		*o = Options{}
		return nil
	}
	if err := json.Unmarshal(b, &tmp); err != nil {
		return err
	}
	*o = Options(tmp)
	return nil
}
