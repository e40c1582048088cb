package uv

import (
	"testing"
	"unicode/utf8"
)

func FuzzNormalize(f *testing.F) {
	f.Add("Arma uirumque cano")
	f.Add("SENATVS POPVLVSQVE ROMANVS")
	f.Add("seruus nouus fluuius iuuat")
	f.Add("quod lingua statua fuit")
	f.Add("")
	f.Add("   ")
	f.Add("u")
	f.Add("v")
	f.Add("uu")
	f.Add("uua")
	f.Add("uult")
	f.Add("nouō")
	f.Add("42, MMXXIV!")
	f.Add("\xff\xfe")
	f.Add("\x00")

	f.Fuzz(func(t *testing.T, s string) {
		result := Normalize(s)

		// Idempotency: applying twice must produce the same result.
		if second := Normalize(result); second != result {
			t.Errorf("not idempotent:\ninput:  %q\nfirst:  %q\nsecond: %q", s, result, second)
		}

		// Normalization swaps letters one for one; rune count is invariant.
		if utf8.RuneCountInString(result) != utf8.RuneCountInString(s) {
			t.Errorf("rune count changed: %q (%d) -> %q (%d)",
				s, utf8.RuneCountInString(s), result, utf8.RuneCountInString(result))
		}
	})
}

func FuzzNormalizeDetailed(f *testing.F) {
	f.Add("Arma uirumque cano")
	f.Add("seruus")
	f.Add("")
	f.Add("uuu")
	f.Add("\xff")

	f.Fuzz(func(t *testing.T, s string) {
		res := NormalizeDetailed(s)

		// The plain and detailed paths must agree.
		if plain := Normalize(s); res.Normalized != plain {
			t.Errorf("detailed/plain mismatch for %q: %q vs %q", s, res.Normalized, plain)
		}

		// Every recorded change must actually differ and be a u/v letter swap.
		for _, c := range res.Changes {
			if c.Original == c.Normalized {
				t.Errorf("change at %d records no difference: %+v", c.Position, c)
			}
			if c.Rule == "" {
				t.Errorf("change at %d has empty rule", c.Position)
			}
		}
	})
}
