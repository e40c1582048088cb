package longs

import (
	"strings"

	"github.com/diyclassics/latincy-preprocess/internal/latincase"
)

// replacement is a deterministic pattern rule. Pass 1 applies each rule
// exhaustively before moving to the next; order is fixed.
type replacement struct {
	from, to string
}

// Trigram rules run before bigram rules so longer patterns win over their
// substrings (fpe before fp).
var trigramRules = []replacement{
	{"fqu", "squ"}, // fqu does not occur in Latin
	{"fpe", "spe"},
	{"fuf", "sus"},
	{"fum", "sum"},
}

var bigramRules = []replacement{
	{"fp", "sp"}, // fp, ft, fc do not occur in Latin
	{"ft", "st"},
	{"fc", "sc"},
}

// pass1 applies the deterministic pattern substitutions to a single word:
// trigram rules, then bigram rules, then word-final f -> s. The word's case
// pattern is detected first and reapplied to the result.
func pass1(word string) string {
	pattern := latincase.Of(word)
	w := strings.ToLower(word)

	for _, r := range trigramRules {
		w = strings.ReplaceAll(w, r.from, r.to)
	}
	for _, r := range bigramRules {
		w = strings.ReplaceAll(w, r.from, r.to)
	}

	// Word-final long-s: only a handful of genuine f-final forms exist in
	// the reference corpus, so a trailing f is treated as s.
	if strings.HasSuffix(w, "f") {
		w = w[:len(w)-1] + "s"
	}

	return latincase.Apply(pattern, w)
}
