// Package mood holds the canonical form shared by dataset labels, user
// queries and classifier output.
package mood

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize trims s, lowercases it and uppercases the first character.
// "  hAPPY " becomes "Happy"; an empty or blank string stays empty.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
