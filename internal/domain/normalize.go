package domain

import "strings"

// NormalizeSpelling prepares a raw dictionary spelling for use as a map key:
//   - strips a trailing "(n)" disambiguation suffix, e.g. "LEAD(2)" → "LEAD"
//   - converts to lowercase
//
// The suffix is stripped only when the spelling ends in ')' and a matching
// '(' exists at an index greater than zero, so a spelling that is nothing
// but a parenthesized token (e.g. "(QUOTE") is left intact. The cut is made
// at the last '(' in the string, matching the source format where the
// suffix always comes last.
func NormalizeSpelling(raw string) string {
	if n := len(raw); n > 0 && raw[n-1] == ')' {
		if idx := strings.LastIndexByte(raw, '('); idx > 0 {
			raw = raw[:idx]
		}
	}
	return strings.ToLower(raw)
}
