package validator

import (
	"fmt"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldHeader strips combining diacritical marks from a header name
// (NFD → remove Mn → NFC), so that e.g. "název" resolves the schema key
// "nazev". On transform failure the name is returned unchanged.
func foldHeader(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// resolveHeader splits the header row, trims each token, optionally folds
// diacritics, and reconciles every name against the schema registry. The
// first unrecognized header is fatal; no data row is processed after it.
//
// On success the returned sequence is the fixed header list for the run.
func (r *Runner) resolveHeader(line string, rowIx int) ([]string, *Diagnostic) {
	names := splitFields(line, r.cfg.Separator)
	for i, name := range names {
		if r.fold {
			name = foldHeader(name)
			names[i] = name
		}
		if _, ok := r.reg.Lookup(name); !ok {
			return nil, &Diagnostic{
				Kind:   KindUnrecognizedHeader,
				Fatal:  true,
				Row:    rowIx,
				Column: i,
				Header: name,
				Value:  name,
				Message: fmt.Sprintf("header %q is not in the schema; known headers: %v",
					name, r.reg.Headers()),
			}
		}
	}
	return names, nil
}
