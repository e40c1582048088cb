// Package macrons removes vowel-length marks from Latin text.
//
// Pedagogical Latin marks long vowels with macrons (laudāre) and sometimes
// short vowels with breves. Downstream models and search indexes usually
// want the unmarked forms, so Strip removes both kinds of mark while
// preserving case:
//
//	macrons.Strip("laudāre") // "laudare"
//	macrons.Strip("Rōma")    // "Roma"
//
// Both precomposed characters (ā, U+0101) and combining-mark sequences
// (a + U+0304) are handled.
//
// All functions are safe for concurrent use.
package macrons

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// precomposed maps the NFC macron vowels straight to their base letters,
// avoiding a decomposition pass for the common case.
var precomposed = strings.NewReplacer(
	"ā", "a", "ē", "e", "ī", "i", "ō", "o", "ū", "u", "ȳ", "y",
	"Ā", "A", "Ē", "E", "Ī", "I", "Ō", "O", "Ū", "U", "Ȳ", "Y",
)

// Combining marks stripped from decomposed text. The breve appears paired
// with macrons in pedagogical texts.
const (
	combiningMacron = '̄'
	combiningBreve  = '̆'
)

// Strip removes macrons and breves from text, preserving case. Characters
// without length marks pass through unchanged; ASCII input is returned
// as-is after the fast path.
func Strip(text string) string {
	text = precomposed.Replace(text)
	if isASCII(text) {
		return text
	}

	decomposed := norm.NFD.String(text)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r == combiningMacron || r == combiningBreve {
			continue
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
