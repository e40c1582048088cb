// Package pipeline chains the Latin preprocessing steps into one call.
//
// The default pipeline applies long-s correction first and u/v
// normalization second. The order is load-bearing: OCR artifacts like
// "ftatua" must become "statua" before the u/v rules inspect the word, or
// the phantom 'f' skews the positional classification.
//
//	pipeline.Normalize("Arma uirumque cano") // "Arma virumque cano"
//	pipeline.Normalize("ftatua eft")         // "statua est"
//
// Individual steps can be disabled and the statistical pass tuned through
// options:
//
//	p := pipeline.New(pipeline.WithoutUV(), pipeline.WithThreshold(3))
//	p.Normalize(text)
//
// Note that whenever the long-s step is enabled, whole-text normalization
// inherits its whitespace contract: tokens are rejoined with single spaces.
// Disable it (WithoutLongS) to keep the original layout through the
// uv-only path.
//
// All methods are safe for concurrent use by multiple goroutines.
package pipeline

import (
	"github.com/diyclassics/latincy-preprocess/longs"
	"github.com/diyclassics/latincy-preprocess/macrons"
	"github.com/diyclassics/latincy-preprocess/uv"
)

// Preprocessor applies a configured sequence of normalization steps.
type Preprocessor struct {
	longS        bool
	uvStep       bool
	pass2        bool
	stripMacrons bool
	threshold    float64
	longsNorm    *longs.Normalizer
}

// Option configures a Preprocessor.
type Option func(*Preprocessor)

// WithoutLongS disables the long-s correction step.
func WithoutLongS() Option {
	return func(p *Preprocessor) { p.longS = false }
}

// WithoutUV disables the u/v normalization step.
func WithoutUV() Option {
	return func(p *Preprocessor) { p.uvStep = false }
}

// WithoutPass2 restricts long-s correction to the deterministic pass.
func WithoutPass2() Option {
	return func(p *Preprocessor) { p.pass2 = false }
}

// WithThreshold sets the statistical pass threshold. Implies nothing about
// the other steps.
func WithThreshold(t float64) Option {
	return func(p *Preprocessor) { p.threshold = t }
}

// WithMacronStrip adds macron/breve removal before the other steps.
func WithMacronStrip() Option {
	return func(p *Preprocessor) { p.stripMacrons = true }
}

// WithLongSNormalizer substitutes a pre-configured long-s normalizer, e.g.
// one with a runtime table source. Overrides WithThreshold for that step.
func WithLongSNormalizer(n *longs.Normalizer) Option {
	return func(p *Preprocessor) { p.longsNorm = n }
}

// New returns a Preprocessor with all options applied. The default runs
// long-s correction (both passes) followed by u/v normalization.
func New(opts ...Option) *Preprocessor {
	p := &Preprocessor{
		longS:     true,
		uvStep:    true,
		pass2:     true,
		threshold: longs.DefaultThreshold,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.longsNorm == nil {
		p.longsNorm = longs.New(longs.WithThreshold(p.threshold))
	}
	return p
}

// Normalize runs the configured steps over text.
func (p *Preprocessor) Normalize(text string) string {
	if text == "" {
		return text
	}
	if p.stripMacrons {
		text = macrons.Strip(text)
	}
	if p.longS {
		text = p.longsNorm.NormalizeText(text, p.pass2)
	}
	if p.uvStep {
		text = uv.Normalize(text)
	}
	return text
}

// std backs the package-level convenience function.
var std = New()

// Normalize runs the default pipeline: long-s correction (both passes)
// followed by u/v normalization.
func Normalize(text string) string {
	return std.Normalize(text)
}
