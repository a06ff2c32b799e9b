package services

import (
	"strings"
	"unicode"
)

// normalizeTitle capitalizes a title the way shared labels are stored:
// first rune upper-cased, the rest lower-cased. All lookups and writes go
// through this, so "milk", "MILK", and "Milk" resolve to the same row.
func normalizeTitle(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
