package validator

import (
	"fmt"
	"strings"
)

// structuralFault checks line-level grammar before the line is split into
// fields. The checks run on the trimmed line in a fixed order:
//
//  1. must not start with the separator
//  2. must not contain two consecutive separators
//  3. must not end with the separator
//
// The first violated rule wins; an empty Kind means the line is structurally
// sound. Any structural fault is fatal to the run: once the framing is
// corrupt, nothing after the faulty line can be trusted.
func structuralFault(line, sep string) (Kind, string) {
	if strings.HasPrefix(line, sep) {
		return KindLeadingSeparator, fmt.Sprintf("line starts with separator %q", sep)
	}
	if strings.Contains(line, sep+sep) {
		return KindEmptyField, fmt.Sprintf("line contains consecutive separators %q", sep+sep)
	}
	if strings.HasSuffix(line, sep) {
		return KindTrailingSeparator, fmt.Sprintf("line ends with separator %q", sep)
	}
	return "", ""
}

// splitFields splits a structurally sound line on the separator and trims
// surrounding whitespace from each field.
func splitFields(line, sep string) []string {
	parts := strings.Split(line, sep)
	for i, p := range parts {
		if hasEdgeSpace(p) {
			parts[i] = strings.TrimSpace(p)
		}
	}
	return parts
}

// hasEdgeSpace reports whether s starts or ends with ASCII whitespace. It
// lets the split loop skip TrimSpace allocations for already-clean fields.
func hasEdgeSpace(s string) bool {
	if s == "" {
		return false
	}
	isSpace := func(b byte) bool {
		return b == ' ' || b == '\t' || b == '\n' || b == '\r'
	}
	return isSpace(s[0]) || isSpace(s[len(s)-1])
}
