// Package config provides the configuration model and helpers for validation
// runs.
//
// This file adds a lightweight linter for Config values paired with a schema
// contract. It performs static checks over a decoded Config and returns a list
// of issues (errors and warnings) that callers can surface in a CLI or tests.
package config

import (
	"fmt"
	"strings"

	"csvcheck/internal/schema"
)

// IssueSeverity represents the severity of a configuration issue.
type IssueSeverity string

const (
	// SeverityError indicates a configuration error that should block a run.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates a configuration warning that should be
	// surfaced to users but does not block a run.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation/lint finding for a Config.
//
// Path is a dotted path into the config (e.g. "separator", "columns[2]").
// Message is human-readable.
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface so an Issue can be treated as a single
// error in contexts that expect one.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// Validate performs static validation of a Config against the schema registry
// it will run with.
//
// It does not mutate the config. It returns a slice of Issue values; callers
// decide whether warnings are fatal.
//
// Example:
//
//	cfg, err := config.Decode(f)
//	...
//	for _, iss := range config.Validate(cfg, reg) {
//	    fmt.Fprintf(os.Stderr, "%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
//	}
func Validate(c Config, reg schema.Registry) []Issue {
	var issues []Issue

	if c.Separator == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "separator",
			Message:  "separator must not be empty",
		})
	}
	if c.Separator != "" && strings.TrimSpace(c.Separator) == "" {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "separator",
			Message:  "separator is whitespace; fields are trimmed, so splits may be ambiguous",
		})
	}
	if c.Delimiter != "" && c.Delimiter == c.Separator {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "delimiter",
			Message:  "delimiter must differ from separator",
		})
	}
	if c.Terminator != "" && c.Terminator == c.Separator {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "terminator",
			Message:  "terminator equals separator; a terminated line will look like a trailing separator",
		})
	}

	issues = append(issues, validateColumns(c, reg)...)
	return issues
}

// validateColumns checks the external column list used when has_headers is
// false. Unknown columns are rejected here so a run never reaches a data row
// with an unresolvable header.
func validateColumns(c Config, reg schema.Registry) []Issue {
	var issues []Issue

	if c.HasHeaders {
		if len(c.Columns) > 0 {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Path:     "columns",
				Message:  "columns are ignored when has_headers is true; the header row names the columns",
			})
		}
		return issues
	}

	if len(c.Columns) == 0 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "columns",
			Message:  "has_headers is false; an explicit column list is required",
		})
		return issues
	}

	seen := make(map[string]struct{}, len(c.Columns))
	for i, col := range c.Columns {
		path := fmt.Sprintf("columns[%d]", i)
		name := strings.TrimSpace(col)
		if name == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     path,
				Message:  "column name must not be empty",
			})
			continue
		}
		if _, dup := seen[name]; dup {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     path,
				Message:  fmt.Sprintf("duplicate column %q", name),
			})
			continue
		}
		seen[name] = struct{}{}
		if _, ok := reg.Lookup(name); !ok {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     path,
				Message:  fmt.Sprintf("column %q is not in the schema; known headers: %v", name, reg.Headers()),
			})
		}
	}
	return issues
}
