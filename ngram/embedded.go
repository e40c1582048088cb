package ngram

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/diyclassics/latincy-preprocess/data"
)

// Embedded returns the Source backed by the snapshot compiled into the
// binary. The snapshot is generated by scripts/buildngrams.go and embedded
// through the data package.
func Embedded() Source {
	return embeddedSource{}
}

type embeddedSource struct{}

func (embeddedSource) Load() (*Tables, error) {
	t := &Tables{}
	if err := sonic.Unmarshal(data.NgramBigrams, &t.Bigrams); err != nil {
		return nil, fmt.Errorf("ngram: decoding embedded bigrams: %w", err)
	}
	if err := sonic.Unmarshal(data.NgramTrigrams, &t.Trigrams); err != nil {
		return nil, fmt.Errorf("ngram: decoding embedded trigrams: %w", err)
	}
	if err := sonic.Unmarshal(data.NgramFourgrams, &t.Fourgrams); err != nil {
		return nil, fmt.Errorf("ngram: decoding embedded fourgrams: %w", err)
	}
	return t, nil
}
