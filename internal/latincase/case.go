// Package latincase provides case-pattern detection and restoration for
// Latin words.
//
// Normalizers in this module lowercase a word before transforming it and
// restore the original casing afterwards. The pattern is detected once,
// before lowercasing, and reapplied to the transformed word:
//
//   - Upper: more than one rune, no lowercase letters ("SENATVS").
//   - Title: first rune uppercase, not all-uppercase ("Statua", "F").
//   - Mixed: uppercase letters in non-initial positions without being
//     all-uppercase ("fVit"). Restored as lowercase.
//   - Lower: everything else.
//
// Mixed-case words deliberately fall through to lowercase output; irregular
// capitalization inside a word carries no signal worth preserving after
// normalization.
//
// All functions are safe for concurrent use.
package latincase

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Pattern classifies the casing of a word.
type Pattern int

const (
	Lower Pattern = iota // all lowercase, or empty
	Title                // first rune uppercase, rest not all-uppercase
	Upper                // every letter uppercase, length > 1
	Mixed                // uppercase letters in irregular positions
)

// String returns the name of the pattern.
func (p Pattern) String() string {
	switch p {
	case Lower:
		return "Lower"
	case Title:
		return "Title"
	case Upper:
		return "Upper"
	case Mixed:
		return "Mixed"
	default:
		return "Pattern(?)"
	}
}

// Of detects the case pattern of word. Detection runs on the original
// string, before any lowercasing.
func Of(word string) Pattern {
	if word == "" {
		return Lower
	}

	if utf8.RuneCountInString(word) > 1 && !hasLowercase(word) {
		return Upper
	}

	first, _ := utf8.DecodeRuneInString(word)
	if unicode.IsUpper(first) {
		return Title
	}

	if hasUppercase(word) {
		return Mixed
	}
	return Lower
}

// Apply restores pattern p onto word, which is expected to be lowercase.
// Title uppercases only the first rune; Upper uppercases everything;
// Lower and Mixed return word unchanged.
func Apply(p Pattern, word string) string {
	switch p {
	case Upper:
		return strings.ToUpper(word)
	case Title:
		return upperFirst(word)
	default:
		return word
	}
}

// upperFirst returns word with its first rune uppercased.
func upperFirst(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError && size <= 1 {
		return word
	}
	up := unicode.ToUpper(r)
	if up == r {
		return word
	}

	var b strings.Builder
	b.Grow(len(word))
	b.WriteRune(up)
	b.WriteString(word[size:])
	return b.String()
}

func hasLowercase(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

func hasUppercase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
