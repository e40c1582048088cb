// Package ngram loads the Latin character n-gram frequency tables consumed
// by the statistical long-s pass.
//
// Three tables are provided: bigrams, trigrams, and fourgrams, each mapping
// an n-gram key to its count in the reference corpus. Trigram and fourgram
// keys for word-initial sequences carry a leading '<' sentinel, so "<su"
// counts words beginning with "su" while "sur" counts the sequence anywhere
// in a word.
//
// Two data sources exist, selected by deployment mode:
//
//   - Embedded: the snapshot compiled into the binary via the data package.
//     Self-contained, no runtime file access.
//   - Dir: JSON files resolved from a directory at load time. Each file is
//     validated against a schema before decoding; a missing or malformed
//     file is a load error.
//
// Tables are immutable after Load returns and safe for concurrent reads.
package ngram

// Tables holds the three frequency mappings. The maps must not be mutated
// after loading.
type Tables struct {
	Bigrams   map[string]uint64
	Trigrams  map[string]uint64
	Fourgrams map[string]uint64
}

// Source loads a set of frequency tables. Load is called at most once per
// normalizer; implementations need not cache.
type Source interface {
	Load() (*Tables, error)
}

// Fixed returns a Source that serves t as-is. Intended for tests and for
// callers that build tables themselves.
func Fixed(t *Tables) Source {
	return fixedSource{t}
}

type fixedSource struct {
	t *Tables
}

func (s fixedSource) Load() (*Tables, error) {
	return s.t, nil
}
