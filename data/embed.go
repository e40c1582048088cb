// Package data embeds the n-gram frequency snapshots used by the long-s
// normalizer.
//
// The JSON files under ngrams/ are generated by scripts/buildngrams.go from
// a reference Latin corpus. Regenerate them when the corpus changes; do not
// edit them by hand.
package data

import _ "embed"

//go:embed ngrams/bigrams.json
var NgramBigrams []byte

//go:embed ngrams/trigrams.json
var NgramTrigrams []byte

//go:embed ngrams/4grams.json
var NgramFourgrams []byte
