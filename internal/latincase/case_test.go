package latincase

import "testing"

func TestOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want Pattern
	}{
		{"", Lower},
		{"statua", Lower},
		{"Statua", Title},
		{"STATUA", Upper},
		{"F", Title}, // single uppercase rune counts as title, not upper
		{"f", Lower},
		{"fVit", Mixed},
		{"FUIt", Title}, // first rune uppercase, not all-uppercase
		{"SENATVS", Upper},
		{"Ārdua", Title},
		{"ĀRDUA", Upper},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			if got := Of(tt.word); got != tt.want {
				t.Errorf("Of(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern Pattern
		word    string
		want    string
	}{
		{"lower unchanged", Lower, "statua", "statua"},
		{"title first rune", Title, "statua", "Statua"},
		{"upper everything", Upper, "statua", "STATUA"},
		{"mixed unchanged", Mixed, "statua", "statua"},
		{"empty", Upper, "", ""},
		{"title macron", Title, "ārdua", "Ārdua"},
		{"title single rune", Title, "s", "S"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Apply(tt.pattern, tt.word); got != tt.want {
				t.Errorf("Apply(%v, %q) = %q, want %q", tt.pattern, tt.word, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	// Detect-lowercase-apply must reproduce the original for the three
	// regular patterns.
	for _, word := range []string{"statua", "Statua", "STATUA", "Fuit", "FVIT"} {
		p := Of(word)
		got := Apply(p, lower(word))
		if got != word {
			t.Errorf("round trip %q: got %q (pattern %v)", word, got, p)
		}
	}
}

func lower(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, toLowerRune(r))
	}
	return string(out)
}

func toLowerRune(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
