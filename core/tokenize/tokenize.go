// core/tokenize/tokenize.go
package tokenize

import (
	"strings"
	"unicode"
)

// Characters splits s into character symbols, one per rune.
func Characters(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Words splits s into word symbols on runs of whitespace.
func Words(s string) []string { return strings.Fields(s) }

// Normalize lowercases s, strips punctuation, and collapses whitespace runs
// to single spaces. Applied before tokenization when normalized comparison
// is requested.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsPunct(r):
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
