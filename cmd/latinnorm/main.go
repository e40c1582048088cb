// Command latinnorm normalizes Latin text from a file or stdin.
//
// It applies long-s OCR correction followed by u/v normalization and writes
// the result to stdout:
//
//	latinnorm input.txt
//	cat input.txt | latinnorm
//
// Steps can be disabled individually; see -help. Note that long-s
// correction rejoins words with single spaces, so the original whitespace
// layout survives only with -no-longs.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/diyclassics/latincy-preprocess/longs"
	"github.com/diyclassics/latincy-preprocess/ngram"
	"github.com/diyclassics/latincy-preprocess/pipeline"
)

func main() {
	var (
		noUV      = flag.Bool("no-uv", false, "skip u/v normalization")
		noLongS   = flag.Bool("no-longs", false, "skip long-s correction")
		noPass2   = flag.Bool("no-pass2", false, "skip the statistical long-s pass")
		stripMac  = flag.Bool("macrons", false, "strip macrons before normalizing")
		threshold = flag.Float64("threshold", longs.DefaultThreshold, "statistical pass frequency-ratio threshold")
		ngramDir  = flag.String("ngrams", "", "directory with n-gram tables (default: embedded snapshot)")
	)
	flag.Parse()

	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Usage: latinnorm [flags] [file]\n")
		flag.PrintDefaults()
		os.Exit(2)
	}

	text, err := readInput(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "latinnorm: %v\n", err)
		os.Exit(1)
	}

	opts := []pipeline.Option{pipeline.WithThreshold(*threshold)}
	if *noUV {
		opts = append(opts, pipeline.WithoutUV())
	}
	if *noLongS {
		opts = append(opts, pipeline.WithoutLongS())
	}
	if *noPass2 {
		opts = append(opts, pipeline.WithoutPass2())
	}
	if *stripMac {
		opts = append(opts, pipeline.WithMacronStrip())
	}
	if *ngramDir != "" {
		n := longs.New(
			longs.WithSource(ngram.Dir(*ngramDir)),
			longs.WithThreshold(*threshold),
		)
		opts = append(opts, pipeline.WithLongSNormalizer(n))
	}

	fmt.Println(pipeline.New(opts...).Normalize(text))
}

func readInput(path string) (string, error) {
	if path == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
