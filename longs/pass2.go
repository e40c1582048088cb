package longs

import (
	"strings"

	"github.com/diyclassics/latincy-preprocess/internal/latincase"
	"github.com/diyclassics/latincy-preprocess/ngram"
)

// pass2 resolves remaining f/s ambiguity at word starts using the n-gram
// frequency tables. The test is strictly one-sided: the s-variant must
// exceed the f-variant by more than the threshold factor AND have been
// observed at least once. A zero-frequency s-variant never overrides, even
// when the f-variant is also zero.
func (n *Normalizer) pass2(word string) string {
	pattern := latincase.Of(word)
	w := strings.ToLower(word)

	// The allowlist overrides statistics unconditionally.
	if _, ok := allowlist[w]; ok {
		return latincase.Apply(pattern, w)
	}

	t := n.tables()
	r := []rune(w)

	switch {
	case len(r) >= 2 && r[0] == 'f' && r[1] == 'u':
		if n.favorsS(t.Trigrams["<su"], t.Trigrams["<fu"]) {
			w = "s" + string(r[1:])
		}
	case len(r) >= 2 && r[0] == 'f' && r[1] == 'e':
		if n.favorsS(t.Trigrams["<se"], t.Trigrams["<fe"]) {
			w = "s" + string(r[1:])
		}
	case len(r) >= 3 && r[0] == 'f' && r[1] == 'i':
		// The trigram ratio for fi/si is too noisy; the third letter
		// makes fourgrams far more discriminating (<fim vs <sim).
		sKey := "<si" + string(r[2])
		fKey := "<fi" + string(r[2])
		if n.favorsS(t.Fourgrams[sKey], t.Fourgrams[fKey]) {
			w = "s" + string(r[1:])
		}
	}

	return latincase.Apply(pattern, w)
}

// favorsS reports whether the s-variant frequency beats the f-variant by
// more than the configured threshold factor.
func (n *Normalizer) favorsS(sFreq, fFreq uint64) bool {
	return float64(sFreq) > float64(fFreq)*n.threshold && sFreq > 0
}

// tables returns the frequency tables, loading them on first use. A load
// failure is fatal: the tables are a hard dependency of the statistical
// pass and there is no degraded mode.
func (n *Normalizer) tables() *ngram.Tables {
	t, err := n.load()
	if err != nil {
		panic("longs: loading n-gram tables: " + err.Error())
	}
	return t
}
