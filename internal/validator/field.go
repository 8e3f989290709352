package validator

import (
	"fmt"
	"strconv"
	"strings"

	"csvcheck/internal/schema"
)

// Accepted range for integer fields.
const (
	intMin = 1
	intMax = 79
)

// maxStringLen bounds the content of a string field after delimiter
// stripping.
const maxStringLen = 50

// Outcome is the result of one field (or structural) check: valid, or
// invalid with a message naming the violated rule.
type Outcome struct {
	OK      bool
	Message string
}

func valid() Outcome { return Outcome{OK: true} }

func invalid(format string, a ...any) Outcome {
	return Outcome{Message: fmt.Sprintf(format, a...)}
}

// checkField validates a single field value against its expected type. The
// checks are pure functions of the value, the type, and the configured
// delimiter; they use hand-rolled scanners rather than a regexp engine so
// behavior is identical everywhere and trivially unit-testable.
func checkField(value string, ft schema.FieldType, delim string) Outcome {
	switch ft {
	case schema.TypeString:
		return checkString(value, delim)
	case schema.TypeInteger:
		return checkInteger(value, delim)
	case schema.TypeBoolean:
		return checkBoolean(value)
	case schema.TypeFloat:
		return checkFloat(value)
	default:
		return invalid("no validator for type %q", ft)
	}
}

// checkString requires delimiter enclosure (when a delimiter is configured),
// letters-and-spaces content, and a length of at most maxStringLen.
func checkString(value, delim string) Outcome {
	content, ok := stripDelimiter(value, delim)
	if !ok {
		return invalid("value %s is not enclosed in %s", value, delim)
	}
	if !isLettersAndSpaces(content) {
		return invalid("value %s may contain letters and spaces only", value)
	}
	if len([]rune(content)) > maxStringLen {
		return invalid("value %s exceeds %d characters", value, maxStringLen)
	}
	return valid()
}

// checkInteger requires delimiter enclosure and a bare, optionally signed
// integer between intMin and intMax inclusive. Out-of-range values get a
// message naming the violated bound; non-numeric content gets the generic
// range message.
func checkInteger(value, delim string) Outcome {
	content, ok := stripDelimiter(value, delim)
	if !ok {
		return invalid("value %s is not enclosed in %s", value, delim)
	}
	if !isSignedInteger(content) {
		return invalid("value %s is outside the accepted range %d-%d", value, intMin, intMax)
	}
	n, err := strconv.Atoi(content)
	if err != nil {
		// Digits only, so this is overflow; treat like any too-large value.
		if strings.HasPrefix(content, "-") {
			return invalid("value %s is below the accepted minimum %d", value, intMin)
		}
		return invalid("value %s is above the accepted maximum %d", value, intMax)
	}
	if n > intMax {
		return invalid("value %s is above the accepted maximum %d", value, intMax)
	}
	if n < intMin {
		return invalid("value %s is below the accepted minimum %d", value, intMin)
	}
	return valid()
}

// booleanTokens are the accepted case-insensitive boolean spellings.
var booleanTokens = map[string]struct{}{
	"true": {}, "false": {}, "1": {}, "0": {}, "yes": {}, "no": {},
}

// checkBoolean accepts case-insensitive membership in booleanTokens. No
// message detail beyond valid/invalid.
func checkBoolean(value string) Outcome {
	if _, ok := booleanTokens[strings.ToLower(value)]; !ok {
		return invalid("value %s is not a valid boolean", value)
	}
	return valid()
}

// checkFloat accepts an optional leading minus, one or more digits, and an
// optional fractional part. No delimiter enclosure is required.
func checkFloat(value string) Outcome {
	if !isFloatLiteral(value) {
		return invalid("value %s is not a valid float", value)
	}
	return valid()
}

// stripDelimiter removes the enclosing delimiter token from both ends of s.
// With no delimiter configured, s passes through unchanged. The second return
// is false when a configured delimiter does not enclose both ends.
func stripDelimiter(s, delim string) (string, bool) {
	if delim == "" {
		return s, true
	}
	if len(s) < 2*len(delim) || !strings.HasPrefix(s, delim) || !strings.HasSuffix(s, delim) {
		return "", false
	}
	return s[len(delim) : len(s)-len(delim)], true
}

// isLettersAndSpaces reports whether s consists solely of ASCII letters and
// spaces. Empty content qualifies; emptiness is not a type violation.
func isLettersAndSpaces(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == ' ' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') {
			continue
		}
		return false
	}
	return true
}

// isSignedInteger reports whether s is an optionally signed run of digits.
func isSignedInteger(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' || s[0] == '+' {
		i = 1
	}
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isFloatLiteral reports whether s matches -?digits(.digits)? exactly.
func isFloatLiteral(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' {
		i = 1
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return false // no integer digits
	}
	if i == len(s) {
		return true
	}
	if s[i] != '.' {
		return false
	}
	i++
	start = i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i > start && i == len(s)
}
