// Package sanitize turns arbitrary text into identifiers that are safe to use
// in SQL DDL. Two classes exist with different failure behavior: schema/table
// identifiers must survive sanitization non-empty, while column names always
// produce a usable result.
package sanitize

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidIdentifier indicates a schema or table name that is empty after
// sanitization. Callers distinguish it with errors.Is().
var ErrInvalidIdentifier = errors.New("invalid identifier")

var nonIdentChars = regexp.MustCompile(`[^0-9A-Za-z_]`)

// Identifier sanitizes a schema or table name: surrounding whitespace is
// trimmed and every character outside [0-9A-Za-z_] is replaced with '_'.
// An empty result is an error; the original input is included for diagnosis.
func Identifier(raw string) (string, error) {
	s := nonIdentChars.ReplaceAllString(strings.TrimSpace(raw), "_")
	if s == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, raw)
	}
	return s, nil
}

// Column sanitizes one CSV header field into a column name. The same character
// replacement as Identifier applies, but Column never fails: an empty result
// becomes "col" and a leading digit is prefixed with "c_".
//
// Uniqueness across columns is not enforced; duplicate sanitized names are
// passed through and rejected by the database at table-creation time.
func Column(raw string) string {
	s := nonIdentChars.ReplaceAllString(strings.TrimSpace(raw), "_")
	if s == "" {
		s = "col"
	}
	if s[0] >= '0' && s[0] <= '9' {
		s = "c_" + s
	}
	return s
}

// Columns sanitizes a header row in order. The result is derived once from
// the header and reused for both table creation and every insert.
func Columns(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = Column(h)
	}
	return out
}
