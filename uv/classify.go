package uv

import (
	"strings"
	"unicode"
)

// Rule identifies the cascade rule that decided a classification. The
// values are stable identifiers suitable for audit logs and golden files.
type Rule string

// Cascade rules in priority order. Classification evaluates them top to
// bottom; the first match wins.
const (
	RuleAfterQ        Rule = "after_q"
	RuleNguDigraph    Rule = "ngu_digraph"
	RuleGuBeforeVowel Rule = "gu_before_vowel"
	RuleWordException Rule = "word_exception"

	RuleVoloPerfect    Rule = "volo_perfect"
	RulePerfectUere    Rule = "perfect_uere"
	RulePerfectUi      Rule = "perfect_ui"
	RulePerfectUit     Rule = "perfect_uit"
	RulePerfectUimus   Rule = "perfect_uimus"
	RulePerfectUisse   Rule = "perfect_uisse"
	RulePerfectUerStem Rule = "perfect_uer_stem"

	RuleDoubleFirstVCuu         Rule = "double_u_first_VCuu"
	RuleDoubleFirstCCuu         Rule = "double_u_first_CCuu"
	RuleDoubleFirstInitialI     Rule = "double_u_first_initial_i"
	RuleDoubleFirstVuu          Rule = "double_u_first_Vuu"
	RuleDoubleFirstInitialVowel Rule = "double_u_first_initial_vowel"
	RuleDoubleFirstInitialCons  Rule = "double_u_first_initial_consonant"

	RuleDoubleSecondVCuu         Rule = "double_u_second_VCuu"
	RuleDoubleSecondCCuu         Rule = "double_u_second_CCuu"
	RuleDoubleSecondInitialI     Rule = "double_u_second_initial_i"
	RuleDoubleSecondVuu          Rule = "double_u_second_Vuu"
	RuleDoubleSecondInitialVowel Rule = "double_u_second_initial_vowel"
	RuleDoubleSecondInitialCons  Rule = "double_u_second_initial_consonant"

	RuleInitialBeforeVowel     Rule = "initial_before_vowel"
	RuleInitialBeforeConsonant Rule = "initial_before_consonant"
	RuleIntervocalic           Rule = "intervocalic"
	RuleBeforeConsonant        Rule = "before_consonant"
	RuleWordFinal              Rule = "word_final"
	RuleVocalicUStem           Rule = "vocalic_u_stem"
	RulePostConsBeforeVowel    Rule = "post_consonant_before_vowel"
	RulePostConsBeforeCons     Rule = "post_consonant_before_consonant"
	RuleDefault                Rule = "default"
)

// isVowel reports whether r is a Latin vowel, including the macronized
// forms used in pedagogical texts. 'u' counts as a vowel, 'v' does not.
func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U',
		'ā', 'ē', 'ī', 'ō', 'ū', 'Ā', 'Ē', 'Ī', 'Ō', 'Ū':
		return true
	}
	return false
}

// isConsonant reports whether r is a Latin consonant. Both 'u' and 'v' are
// excluded: their value is exactly what classification decides.
func isConsonant(r rune) bool {
	switch lowerASCII(r) {
	case 'b', 'c', 'd', 'f', 'g', 'h', 'j', 'k', 'l', 'm', 'n', 'p', 'q', 'r',
		's', 't', 'w', 'x', 'y', 'z':
		return true
	}
	return false
}

func isAlpha(r rune) bool {
	return unicode.IsLetter(r)
}

// isUPerfectConsonant reports whether r can precede a u-perfect ending
// (fui, potuit, habuimus, ...).
func isUPerfectConsonant(r rune) bool {
	switch lowerASCII(r) {
	case 'f', 't', 'n', 'b', 'c', 'm', 's', 'p', 'x':
		return true
	}
	return false
}

func lowerASCII(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// at returns the rune at index i, or 0 when i is out of range. The zero
// rune matches no letter class, so the cascade predicates can probe beyond
// the text without bounds checks.
func at(chars []rune, i int) rune {
	if i < 0 || i >= len(chars) {
		return 0
	}
	return chars[i]
}

// isWordBoundary reports whether index idx starts a word: it is the start
// of the text or preceded by a non-alphabetic rune.
func isWordBoundary(chars []rune, idx int) bool {
	return idx == 0 || !isAlpha(chars[idx-1])
}

// isWordEnd reports whether index idx ends a word.
func isWordEnd(chars []rune, idx int) bool {
	return idx == len(chars)-1 || !isAlpha(chars[idx+1])
}

// containingWord returns the lowercased maximal alphabetic run around idx.
func containingWord(chars []rune, idx int) string {
	start := idx
	for start > 0 && isAlpha(chars[start-1]) {
		start--
	}
	end := idx
	for end < len(chars)-1 && isAlpha(chars[end+1]) {
		end++
	}
	word := make([]rune, 0, end-start+1)
	for _, r := range chars[start : end+1] {
		word = append(word, unicode.ToLower(r))
	}
	return string(word)
}

// contextWindow renders the runes around idx with the target bracketed,
// e.g. "ser[u]us" for window 3.
func contextWindow(chars []rune, idx, window int) string {
	start := idx - window
	if start < 0 {
		start = 0
	}
	end := idx + window + 1
	if end > len(chars) {
		end = len(chars)
	}
	out := make([]rune, 0, end-start+2)
	out = append(out, chars[start:idx]...)
	out = append(out, '[', chars[idx], ']')
	out = append(out, chars[idx+1:end]...)
	return string(out)
}

// classify assigns the classical value of the u/v letter at idx. The
// caller guarantees chars[idx] is one of u, v, U, V. The cascade mirrors
// the positional rules of classical orthography; rule order is strict and
// first match wins.
func classify(chars []rune, idx int) (rune, Rule) {
	prev := at(chars, idx-1)
	prev2 := at(chars, idx-2)
	prev3 := at(chars, idx-3)
	next1 := at(chars, idx+1)
	next2 := at(chars, idx+2)
	next3 := at(chars, idx+3)
	next4 := at(chars, idx+4)
	next5 := at(chars, idx+5)

	word := containingWord(chars, idx)

	// Rule 1: after 'q' the letter is always vocalic (qu digraph).
	if lowerASCII(prev) == 'q' {
		return 'u', RuleAfterQ
	}

	// Rule 2: gu/ngu digraph before a vowel (lingua, sanguis).
	if lowerASCII(prev) == 'g' && isVowel(next1) {
		if lowerASCII(prev2) == 'n' {
			return 'u', RuleNguDigraph
		}
		return 'u', RuleGuBeforeVowel
	}

	// Rule 3: morphological whole-word exceptions.
	if _, ok := vocalicUWords[word]; ok {
		return 'u', RuleWordException
	}

	// Rule 4: perfect-tense heuristics.
	// volo/nolo/malo take a u-perfect after 'l' (voluit, noluit).
	if lowerASCII(next1) == 'i' && lowerASCII(prev) == 'l' {
		if strings.HasPrefix(word, "vol") || strings.HasPrefix(word, "nol") ||
			strings.HasPrefix(word, "mal") || strings.HasPrefix(word, "uol") {
			if lowerASCII(next2) == 't' && atWordEdge(next3) {
				return 'u', RuleVoloPerfect
			}
		}
	}

	// Syncopated perfect -uere (3pl: potuere, fuere).
	if lowerASCII(next1) == 'e' && lowerASCII(next2) == 'r' && lowerASCII(next3) == 'e' &&
		atWordEdge(next4) && isUPerfectConsonant(prev) {
		return 'u', RulePerfectUere
	}

	if lowerASCII(next1) == 'i' {
		// -ui at word end (1sg perfect: fui, potui).
		if atWordEdge(next2) && isUPerfectConsonant(prev) {
			return 'u', RulePerfectUi
		}

		// -uit at word end (3sg perfect: fuit, potuit).
		if lowerASCII(next2) == 't' && atWordEdge(next3) && isUPerfectConsonant(prev) {
			return 'u', RulePerfectUit
		}

		// -uimus at word end (1pl perfect: fuimus).
		if lowerASCII(next2) == 'm' && lowerASCII(next3) == 'u' && lowerASCII(next4) == 's' &&
			atWordEdge(next5) && isUPerfectConsonant(prev) {
			return 'u', RulePerfectUimus
		}

		// -uisse perfect infinitive, after any consonant.
		if lowerASCII(next2) == 's' && lowerASCII(next3) == 's' && lowerASCII(next4) == 'e' &&
			atWordEdge(next5) && isConsonant(prev) {
			return 'u', RulePerfectUisse
		}
	}

	// Pluperfect/future perfect stems -uera-, -ueri-, -uero-.
	if lowerASCII(next1) == 'e' && lowerASCII(next2) == 'r' {
		switch lowerASCII(next3) {
		case 'a', 'i', 'o':
			if isUPerfectConsonant(prev) {
				return 'u', RulePerfectUerStem
			}
		}
	}

	// Rule 5: doubled u/v letters. The first and second letters use
	// mirror-image predicates one position apart with the consonant and
	// vowel results swapped. The asymmetry encodes the derivation of
	// servus, novus, fluvius from seru-us, nou-us, fluu-ius and must not
	// be "simplified".
	if isUV(next1) {
		switch {
		case isWordBoundary(chars, idx):
			// Pair at word start: the letter after the pair decides
			// (uua -> uva, uult -> vult).
			if isVowel(next2) {
				return 'u', RuleDoubleFirstInitialVowel
			}
			return 'v', RuleDoubleFirstInitialCons
		case isConsonant(prev):
			if isVowel(prev2) {
				return 'v', RuleDoubleFirstVCuu
			}
			return 'u', RuleDoubleFirstCCuu
		case isVowel(prev):
			if lowerASCII(prev) == 'i' && isWordBoundary(chars, idx-1) {
				return 'u', RuleDoubleFirstInitialI
			}
			return 'v', RuleDoubleFirstVuu
		}
	}

	if isUV(prev) {
		switch {
		case isWordBoundary(chars, idx-1):
			if isVowel(next1) {
				return 'v', RuleDoubleSecondInitialVowel
			}
			return 'u', RuleDoubleSecondInitialCons
		case isConsonant(prev2):
			if isVowel(prev3) {
				return 'u', RuleDoubleSecondVCuu
			}
			return 'v', RuleDoubleSecondCCuu
		case isVowel(prev2):
			if lowerASCII(prev2) == 'i' && isWordBoundary(chars, idx-2) {
				return 'v', RuleDoubleSecondInitialI
			}
			return 'u', RuleDoubleSecondVuu
		}
	}

	// Rule 6: word-initial position.
	if isWordBoundary(chars, idx) {
		if isVowel(next1) {
			return 'v', RuleInitialBeforeVowel
		}
		return 'u', RuleInitialBeforeConsonant
	}

	// Rule 7: intervocalic position.
	if isVowel(prev) && isVowel(next1) {
		return 'v', RuleIntervocalic
	}

	// Rule 8: before a consonant.
	if isConsonant(next1) {
		return 'u', RuleBeforeConsonant
	}

	// Rule 9: word-final position.
	if isWordEnd(chars, idx) {
		return 'u', RuleWordFinal
	}

	// Rule 10: consonant before vowel, unless a vocalic-u stem.
	if isConsonant(prev) && isVowel(next1) {
		for _, stem := range vocalicUStems {
			if strings.Contains(word, stem) {
				return 'u', RuleVocalicUStem
			}
		}
		return 'v', RulePostConsBeforeVowel
	}

	// Rule 11: consonant before consonant or word end.
	if isConsonant(prev) && (next1 == 0 || isConsonant(next1) || !isAlpha(next1)) {
		return 'u', RulePostConsBeforeCons
	}

	// Rule 12: conservative fallback.
	return 'u', RuleDefault
}

func isUV(r rune) bool {
	l := lowerASCII(r)
	return l == 'u' || l == 'v'
}

// atWordEdge reports whether r sits past the containing word: absent (rune
// 0 from at) or non-alphabetic.
func atWordEdge(r rune) bool {
	return r == 0 || !isAlpha(r)
}

