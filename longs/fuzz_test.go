package longs

import (
	"strings"
	"testing"
)

func FuzzNormalizeWord(f *testing.F) {
	f.Add("ftatua")
	f.Add("fpiritus")
	f.Add("funt")
	f.Add("fuit")
	f.Add("FTATUA")
	f.Add("Fpiritus")
	f.Add("")
	f.Add("f")
	f.Add("s")
	f.Add("fortuna")
	f.Add("fufcepit")
	f.Add("\xff\xfe")
	f.Add("\x00")

	f.Fuzz(func(t *testing.T, word string) {
		for _, pass2 := range []bool{false, true} {
			result := NormalizeWord(word, pass2)

			// Idempotency.
			if second := NormalizeWord(result, pass2); second != result {
				t.Errorf("not idempotent (pass2=%v):\ninput:  %q\nfirst:  %q\nsecond: %q",
					pass2, word, result, second)
			}
		}
	})
}

func FuzzNormalizeText(f *testing.F) {
	f.Add("ftatua fpiritus funt")
	f.Add("Sic uita eft")
	f.Add("  ftatua\n\tfpiritus  ")
	f.Add("")
	f.Add("   ")
	f.Add("\xff \xfe")

	f.Fuzz(func(t *testing.T, text string) {
		result := NormalizeText(text, true)

		// Idempotency.
		if second := NormalizeText(result, true); second != result {
			t.Errorf("not idempotent:\ninput:  %q\nfirst:  %q\nsecond: %q", text, result, second)
		}

		// Output whitespace contract: single spaces only, no edge spaces.
		if strings.Contains(result, "  ") || result != strings.TrimSpace(result) {
			t.Errorf("whitespace contract violated: %q -> %q", text, result)
		}
	})
}
