//go:build ignore

// buildngrams generates data/ngrams/{bigrams.json,trigrams.json,4grams.json} —
// the letter n-gram tables used by the statistical long-s pass. Run from the
// project root against a directory of plain-text Latin corpus files (one
// document per file):
//
//	go run scripts/buildngrams.go path/to/corpus
//
// Each table maps an n-gram to its occurrence count across the corpus.
// Bigrams hold every two-letter window inside a word. Trigrams and fourgrams
// additionally hold the word-start n-gram, shortened by one letter and
// prefixed with the "<" sentinel ("sunt" contributes "<su" and "<sun"); the
// sentinel keys are the ones the normalizer's frequency gates consult.
package main

import (
	"bufio"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/bytedance/sonic"

	"github.com/diyclassics/latincy-preprocess/macrons"
)

const (
	bigramsPath   = "data/ngrams/bigrams.json"
	trigramsPath  = "data/ngrams/trigrams.json"
	fourgramsPath = "data/ngrams/4grams.json"
	wordStart     = "<"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("[buildngrams] ")

	if len(os.Args) != 2 {
		log.Fatalf("usage: go run scripts/buildngrams.go <corpus-dir>")
	}
	corpusDir := os.Args[1]

	bigrams := make(map[string]uint64)
	trigrams := make(map[string]uint64)
	fourgrams := make(map[string]uint64)

	files, err := filepath.Glob(filepath.Join(corpusDir, "*.txt"))
	if err != nil {
		log.Fatalf("cannot list corpus dir: %v", err)
	}
	if len(files) == 0 {
		log.Fatalf("no .txt files in %s", corpusDir)
	}

	var words int
	for _, path := range files {
		n, err := processFile(path, bigrams, trigrams, fourgrams)
		if err != nil {
			log.Printf("warning: skipping %q: %v", path, err)
			continue
		}
		words += n
	}
	log.Printf("counted %d words from %d files", words, len(files))

	for path, table := range map[string]map[string]uint64{
		bigramsPath:   bigrams,
		trigramsPath:  trigrams,
		fourgramsPath: fourgrams,
	} {
		if err := writeTable(path, table); err != nil {
			log.Fatalf("cannot write %s: %v", path, err)
		}
		log.Printf("wrote %d entries to %s", len(table), path)
	}
}

// processFile counts letter n-grams from one corpus file.
// Returns the number of words processed.
func processFile(path string, bigrams, trigrams, fourgrams map[string]uint64) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	words := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		for _, w := range strings.Fields(sc.Text()) {
			r := clean(w)
			if len(r) == 0 {
				continue
			}
			count(bigrams, r, 2, false)
			count(trigrams, r, 3, true)
			count(fourgrams, r, 4, true)
			words++
		}
	}
	return words, sc.Err()
}

// clean lowercases a token, strips macrons, and drops surrounding
// punctuation. Returns nil for tokens containing interior non-letters.
func clean(w string) []rune {
	w = macrons.Strip(strings.ToLower(w))
	w = strings.TrimFunc(w, func(r rune) bool { return !unicode.IsLetter(r) })
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return nil
		}
	}
	return []rune(w)
}

// count records every sliding n-gram of the word. With sentinel set it also
// records the word-start (n-1)-gram behind the "<" marker, which is the key
// form the frequency gates look up.
func count(table map[string]uint64, word []rune, n int, sentinel bool) {
	for i := 0; i+n <= len(word); i++ {
		table[string(word[i:i+n])]++
	}
	if sentinel && len(word) >= n-1 {
		table[wordStart+string(word[:n-1])]++
	}
}

// writeTable marshals one n-gram table to path as a JSON object.
func writeTable(path string, table map[string]uint64) error {
	b, err := sonic.Marshal(table)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
