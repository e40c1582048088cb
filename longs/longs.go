// Package longs corrects long-s OCR artifacts in Latin text.
//
// The historical long-s glyph (ſ) is routinely OCR'd as 'f', yielding
// "ftatua" for "statua" and "fpiritus" for "spiritus". Correction runs in
// two passes per word:
//
//   - Pass 1, deterministic: pattern substitutions for f-sequences that do
//     not occur in Latin (fqu, fpe, fp, ft, fc, ...) plus word-final f.
//   - Pass 2, statistical: word-initial fu/fe/fi ambiguity resolved against
//     n-gram frequency tables, guarded by an allowlist of genuine f-words.
//
//	longs.NormalizeWord("ftatua", false) // "statua"
//	longs.NormalizeWord("funt", true)    // "sunt"
//	longs.NormalizeWord("fuit", true)    // "fuit" (allowlisted)
//
// Case patterns (lower, Title, UPPER) are detected before and restored
// after transformation; both passes are idempotent.
//
// The frequency tables load lazily exactly once per Normalizer, on the
// first Pass-2 call, and are immutable afterwards. By default they come
// from the snapshot embedded in the binary; setting the
// LATINCY_PREPROCESS_NGRAMS environment variable to a directory of table
// files selects runtime loading instead. A missing or malformed table is a
// fatal error (panic): there is no partial or fallback table.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - NormalizeText splits on whitespace and rejoins with single spaces;
//     the original whitespace layout is not preserved.
//   - Mid-word fi/fe/fu ambiguity (beyond the deterministic patterns) is
//     out of reach of the word-initial statistics and left unchanged.
package longs

import (
	"os"
	"strings"
	"sync"

	"github.com/diyclassics/latincy-preprocess/ngram"
)

// DefaultThreshold is the frequency-ratio factor the s-variant must exceed
// for a statistical replacement.
const DefaultThreshold = 2.0

// EnvNgramDir names the environment variable that switches the default
// normalizer from the embedded snapshot to a runtime table directory.
const EnvNgramDir = "LATINCY_PREPROCESS_NGRAMS"

// Normalizer applies long-s correction with a fixed threshold and table
// source. The zero value is not usable; use New.
type Normalizer struct {
	threshold float64
	source    ngram.Source
	load      func() (*ngram.Tables, error)
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithThreshold sets the Pass-2 frequency-ratio threshold.
func WithThreshold(t float64) Option {
	return func(n *Normalizer) { n.threshold = t }
}

// WithSource sets the frequency-table source, overriding the default
// embedded-or-environment selection.
func WithSource(s ngram.Source) Option {
	return func(n *Normalizer) { n.source = s }
}

// New returns a Normalizer. Without options it uses DefaultThreshold and
// the default table source: the directory named by LATINCY_PREPROCESS_NGRAMS
// if set, otherwise the embedded snapshot. Tables are loaded exactly once,
// on the first Pass-2 call.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(n)
	}
	n.load = sync.OnceValues(func() (*ngram.Tables, error) {
		src := n.source
		if src == nil {
			src = defaultSource()
		}
		return src.Load()
	})
	return n
}

func defaultSource() ngram.Source {
	if dir := os.Getenv(EnvNgramDir); dir != "" {
		return ngram.Dir(dir)
	}
	return ngram.Embedded()
}

// NormalizeWord corrects long-s artifacts in a single word. Pass 1 always
// runs; Pass 2 runs when applyPass2 is true.
func (n *Normalizer) NormalizeWord(word string, applyPass2 bool) string {
	w := pass1(word)
	if applyPass2 {
		w = n.pass2(w)
	}
	return w
}

// NormalizeText corrects long-s artifacts in whole text: the input is split
// on whitespace, each token normalized independently, and the tokens
// rejoined with single spaces. Inter-token whitespace is NOT preserved.
func (n *Normalizer) NormalizeText(text string, applyPass2 bool) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	for i, w := range words {
		words[i] = n.NormalizeWord(w, applyPass2)
	}
	return strings.Join(words, " ")
}

// std is the package-level default normalizer backing the convenience
// functions.
var std = New()

// NormalizeWord corrects a single word using the default normalizer.
func NormalizeWord(word string, applyPass2 bool) string {
	return std.NormalizeWord(word, applyPass2)
}

// NormalizeText corrects whole text using the default normalizer. See
// Normalizer.NormalizeText for the whitespace contract.
func NormalizeText(text string, applyPass2 bool) string {
	return std.NormalizeText(text, applyPass2)
}
