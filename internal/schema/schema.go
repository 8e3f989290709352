// Package schema models the column contract a delimited file is validated
// against: the set of expected headers and the field type each one carries.
package schema

import (
	"fmt"
	"sort"
	"strings"
)

// FieldType names a validatable field type.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeInteger FieldType = "integer"
	TypeBoolean FieldType = "boolean"
	TypeFloat   FieldType = "float"
)

// ParseType normalizes a type spelling from a contract file. Common database
// spellings map onto the four canonical types so contracts exported from
// table definitions load without editing.
func ParseType(s string) (FieldType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string", "text", "varchar", "char":
		return TypeString, nil
	case "integer", "int", "bigint", "smallint":
		return TypeInteger, nil
	case "boolean", "bool", "bit":
		return TypeBoolean, nil
	case "float", "double", "real", "decimal", "numeric":
		return TypeFloat, nil
	}
	return "", fmt.Errorf("unknown field type %q", s)
}

// Field is one column of a contract as it appears in the JSON file.
type Field struct {
	Header string `json:"header"`
	Type   string `json:"type"`
}

// Contract is the JSON model of a schema file.
type Contract struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Registry is an immutable header-to-type lookup built from a Contract. The
// zero value is empty; build one with NewRegistry.
type Registry struct {
	types map[string]FieldType
}

// NewRegistry validates a contract and builds its lookup. A contract with no
// fields, a blank or duplicate header, or an unknown type is rejected.
func NewRegistry(c Contract) (Registry, error) {
	if len(c.Fields) == 0 {
		return Registry{}, fmt.Errorf("schema %q has no fields", c.Name)
	}
	types := make(map[string]FieldType, len(c.Fields))
	for i, f := range c.Fields {
		header := strings.TrimSpace(f.Header)
		if header == "" {
			return Registry{}, fmt.Errorf("schema %q: field %d has an empty header", c.Name, i)
		}
		if _, dup := types[header]; dup {
			return Registry{}, fmt.Errorf("schema %q: duplicate header %q", c.Name, header)
		}
		ft, err := ParseType(f.Type)
		if err != nil {
			return Registry{}, fmt.Errorf("schema %q: header %q: %w", c.Name, header, err)
		}
		types[header] = ft
	}
	return Registry{types: types}, nil
}

// Lookup returns the field type registered for header.
func (r Registry) Lookup(header string) (FieldType, bool) {
	ft, ok := r.types[header]
	return ft, ok
}

// Len returns the number of registered headers.
func (r Registry) Len() int { return len(r.types) }

// Headers returns the registered headers in sorted order, for stable
// diagnostics.
func (r Registry) Headers() []string {
	out := make([]string, 0, len(r.types))
	for h := range r.types {
		out = append(out, h)
	}
	sort.Strings(out)
	return out
}
