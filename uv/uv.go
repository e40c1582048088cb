// Package uv restores the classical u/v distinction in Latin text.
//
// Early printed and transcribed Latin uses a single letterform for both the
// vowel 'u' and the consonant 'v' ("seruus", "VNIVERSVM"). This package
// reassigns each u/v letter its classical value from the surrounding word:
//
//	uv.Normalize("Arma uirumque cano")  // "Arma virumque cano"
//	uv.Normalize("SENATVS POPVLVSQVE")  // "SENATUS POPULUSQUE"
//
// Classification is a pure function of the containing word and position,
// decided by an ordered rule cascade: digraphs (qu, ngu) first, then
// morphological word exceptions, perfect-tense heuristics, doubled-letter
// patterns, and finally positional defaults. Letters the cascade cannot
// place stay 'u'; everything that is not a u/v letter passes through
// unchanged, so arbitrary mixed input is safe.
//
// Case is preserved per position, and Normalize is idempotent.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - The exception sets cover common classical vocabulary only; rare
//     vocalic-u forms outside them normalize to 'v' by position.
//   - Classification looks at most 5 letters ahead and 3 behind; it never
//     consults neighboring words.
package uv

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// contextRadius is the rune window recorded around a change in detailed mode.
const contextRadius = 3

// ErrNotUV reports that a classified position does not address a u/v letter.
var ErrNotUV = errors.New("uv: character is not a u/v letter")

// Change records a single normalization decision that altered the text.
type Change struct {
	Position   int    `json:"position"`   // rune index in the input
	Original   string `json:"original"`   // letter before normalization
	Normalized string `json:"normalized"` // letter after normalization
	Rule       Rule   `json:"rule"`       // deciding cascade rule
	Context    string `json:"context"`    // ±3-rune window, target bracketed
}

// Result is the output of NormalizeDetailed.
type Result struct {
	Original   string   `json:"original"`
	Normalized string   `json:"normalized"`
	Changes    []Change `json:"changes"`
}

// Normalize returns text with every u/v letter reassigned its classical
// value. All other runes, including whitespace and punctuation, are
// untouched; each letter keeps its original case.
func Normalize(text string) string {
	if text == "" {
		return text
	}

	chars := []rune(text)
	var b strings.Builder
	b.Grow(len(text))

	for i, ch := range chars {
		b.WriteRune(normalizeAt(chars, i, ch))
	}
	return b.String()
}

// Classify returns the classical letter and deciding rule for the u/v
// letter at rune index idx of text. The returned letter carries the case of
// the input letter. Classifying a position that is out of bounds or not a
// u/v letter is a caller contract violation and returns an error.
func Classify(text string, idx int) (string, Rule, error) {
	chars := []rune(text)
	if idx < 0 || idx >= len(chars) {
		return "", "", fmt.Errorf("uv: index %d out of range [0,%d)", idx, len(chars))
	}
	ch := chars[idx]
	if !isUV(ch) {
		return "", "", fmt.Errorf("%w: %q at index %d", ErrNotUV, ch, idx)
	}

	letter, rule := classify(chars, idx)
	return string(matchCase(letter, ch)), rule, nil
}

// NormalizeDetailed normalizes text like Normalize and additionally records
// a Change for every position whose output letter differs from the input,
// in text order. Intended for auditing and corpus diagnostics; the records
// are derivative and never persisted by this package.
func NormalizeDetailed(text string) Result {
	if text == "" {
		return Result{}
	}

	chars := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	var changes []Change

	for i, ch := range chars {
		if !isUV(ch) {
			b.WriteRune(ch)
			continue
		}
		letter, rule := classify(chars, i)
		normalized := matchCase(letter, ch)
		b.WriteRune(normalized)

		if normalized != ch {
			changes = append(changes, Change{
				Position:   i,
				Original:   string(ch),
				Normalized: string(normalized),
				Rule:       rule,
				Context:    contextWindow(chars, i, contextRadius),
			})
		}
	}

	return Result{Original: text, Normalized: b.String(), Changes: changes}
}

// Collapse undoes the u/v distinction: every 'v' becomes 'u' (and 'V'
// becomes 'U'), preserving case. Useful for preparing text for models that
// expect u-only Latin and for round-trip testing against Normalize.
func Collapse(text string) string {
	if text == "" {
		return text
	}
	return collapseReplacer.Replace(text)
}

var collapseReplacer = strings.NewReplacer("v", "u", "V", "U")

// normalizeAt returns the output rune for position i.
func normalizeAt(chars []rune, i int, ch rune) rune {
	if !isUV(ch) {
		return ch
	}
	letter, _ := classify(chars, i)
	return matchCase(letter, ch)
}

// matchCase transfers the case of original onto the classified letter.
func matchCase(letter, original rune) rune {
	if unicode.IsUpper(original) {
		return unicode.ToUpper(letter)
	}
	return letter
}
