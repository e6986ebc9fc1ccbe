package identify

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// idTail matches identifier text that continues through a closing
// parenthesis, e.g. the "b)" in "CPD-123(a/b)". A slash followed by
// such a tail belongs to the identifier, not to a separator.
var idTail = regexp.MustCompile(`^[\w:/-]+\)`)

// SplitIDs parses one database cell into its metabolite identifiers.
// Identifiers are separated by "; " or by "/", except that a slash
// inside a parenthesized fragment does not separate. Tokens in the
// invalid list and all-digit tokens are discarded.
func SplitIDs(raw string, invalid []string) []string {
	var ids []string
	for _, segment := range strings.Split(raw, "; ") {
		for _, token := range splitSlashes(segment) {
			if token == "" || slices.Contains(invalid, token) || allDigits(token) {
				continue
			}
			ids = append(ids, token)
		}
	}
	return ids
}

func splitSlashes(s string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '/' && !idTail.MatchString(s[i+1:]) {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
