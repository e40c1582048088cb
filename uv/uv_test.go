package uv

import (
	"strings"
	"sync"
	"testing"
)

// ---------------------------------------------------------------------------
// Normalize — table-driven tests
// ---------------------------------------------------------------------------

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		// -- qu digraph --

		{"quod unchanged", "quod", "quod"},
		{"aqua unchanged", "aqua", "aqua"},
		{"quinque unchanged", "quinque", "quinque"},

		// -- gu/ngu digraph --

		{"lingua unchanged", "lingua", "lingua"},
		{"sanguis unchanged", "sanguis", "sanguis"},
		{"pinguis unchanged", "pinguis", "pinguis"},

		// -- word exceptions --

		{"cui unchanged", "cui", "cui"},
		{"sua unchanged", "sua", "sua"},
		{"perpetuum unchanged", "perpetuum", "perpetuum"},
		{"eius unchanged", "eius", "eius"},

		// -- perfect tense --

		{"fuit unchanged", "fuit", "fuit"},
		{"potuit unchanged", "potuit", "potuit"},
		{"fuisse unchanged", "fuisse", "fuisse"},
		{"fuerat unchanged", "fuerat", "fuerat"},
		{"fuimus unchanged", "fuimus", "fuimus"},
		{"potuere unchanged", "potuere", "potuere"},
		{"voluit unchanged", "voluit", "voluit"},

		// -- doubled letters, asymmetric first/second treatment --

		{"seruus to servus", "seruus", "servus"},
		{"fluuius to fluvius", "fluuius", "fluvius"},
		{"nouus to novus", "nouus", "novus"},
		{"iuuat to iuvat", "iuuat", "iuvat"},
		{"paruus to parvus", "paruus", "parvus"},

		// -- doubled letters at word start --

		{"uua to uva", "uua", "uva"},
		{"uuae to uvae", "uuae", "uvae"},
		{"uult to vult", "uult", "vult"},
		{"uulgus to vulgus", "uulgus", "vulgus"},
		{"uultus to vultus", "uultus", "vultus"},
		{"caps uulgus", "VVLGVS", "VULGUS"},
		{"initial pair mid sentence", "dulcis uua maturescit", "dulcis uva maturescit"},

		// -- word-initial --

		{"uia to via", "uia", "via"},
		{"uir to vir", "uir", "vir"},
		{"uox to vox", "uox", "vox"},
		{"uinum to vinum", "uinum", "vinum"},
		{"unda unchanged", "unda", "unda"},

		// -- intervocalic --

		{"nouo to novo", "nouo", "novo"},
		{"breuis to brevis", "breuis", "brevis"},
		{"auis to avis", "auis", "avis"},

		// -- positional defaults --

		{"soluit to solvit", "soluit", "solvit"},
		{"ursus unchanged", "ursus", "ursus"},

		// -- vocalic-u stems --

		{"statua unchanged", "statua", "statua"},
		{"statuae unchanged", "statuae", "statuae"},
		{"ardua unchanged", "ardua", "ardua"},
		{"arduo unchanged", "arduo", "arduo"},
		{"fatua unchanged", "fatua", "fatua"},
		{"residua unchanged", "residua", "residua"},
		{"strenua unchanged", "strenua", "strenua"},
		{"conspicua unchanged", "conspicua", "conspicua"},
		{"individua unchanged", "individua", "individua"},

		// -- whole sentences, case preservation --

		{"aeneid opening", "Arma uirumque cano", "Arma virumque cano"},
		{"inscription caps", "SENATVS POPVLVSQVE ROMANVS", "SENATUS POPULUSQUE ROMANUS"},
		{"title case", "Vrbs", "Urbs"},

		// -- non-Latin and mixed input pass through --

		{"empty", "", ""},
		{"whitespace only", "  \n\t", "  \n\t"},
		{"digits and punctuation", "MMXXIV, 42!", "MMXXIV, 42!"},
		{"single u", "u", "u"},
		{"single v", "v", "u"},

		// -- macronized vowels participate as vowels --

		{"macron intervocalic", "nouō", "novō"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Arma uirumque cano",
		"SENATVS POPVLVSQVE ROMANVS",
		"seruus nouus fluuius iuuat",
		"statua quod lingua fuit",
		"Sic transit gloria mundi.",
		"uua uui uuo uult uu uuu",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("not idempotent:\ninput:  %q\nfirst:  %q\nsecond: %q", in, once, twice)
		}
	}
}

// ---------------------------------------------------------------------------
// Classify
// ---------------------------------------------------------------------------

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		idx        int
		wantLetter string
		wantRule   Rule
	}{
		{"after q", "quod", 1, "u", RuleAfterQ},
		{"ngu digraph", "lingua", 4, "u", RuleNguDigraph},
		{"word exception", "cui", 1, "u", RuleWordException},
		{"perfect uit", "fuit", 1, "u", RulePerfectUit},
		{"volo perfect", "voluit", 3, "u", RuleVoloPerfect},
		{"double first VCuu", "seruus", 3, "v", RuleDoubleFirstVCuu},
		{"double second VCuu", "seruus", 4, "u", RuleDoubleSecondVCuu},
		{"initial i first", "iuuat", 1, "u", RuleDoubleFirstInitialI},
		{"initial i second", "iuuat", 2, "v", RuleDoubleSecondInitialI},
		{"initial pair before vowel first", "uua", 0, "u", RuleDoubleFirstInitialVowel},
		{"initial pair before vowel second", "uua", 1, "v", RuleDoubleSecondInitialVowel},
		{"initial pair before consonant first", "uult", 0, "v", RuleDoubleFirstInitialCons},
		{"initial pair before consonant second", "uult", 1, "u", RuleDoubleSecondInitialCons},
		{"initial before vowel", "uia", 0, "v", RuleInitialBeforeVowel},
		{"initial before consonant", "unda", 0, "u", RuleInitialBeforeConsonant},
		{"intervocalic", "auis", 1, "v", RuleIntervocalic},
		{"before consonant", "ursus", 0, "u", RuleInitialBeforeConsonant},
		{"vocalic stem", "statua", 4, "u", RuleVocalicUStem},
		{"post consonant before vowel", "soluit", 3, "v", RulePostConsBeforeVowel},
		{"uppercase keeps case", "SENATVS", 5, "U", RuleBeforeConsonant},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			letter, rule, err := Classify(tt.text, tt.idx)
			if err != nil {
				t.Fatalf("Classify(%q, %d) error: %v", tt.text, tt.idx, err)
			}
			if letter != tt.wantLetter || rule != tt.wantRule {
				t.Errorf("Classify(%q, %d) = (%q, %q), want (%q, %q)",
					tt.text, tt.idx, letter, rule, tt.wantLetter, tt.wantRule)
			}
		})
	}
}

func TestClassifyContractViolations(t *testing.T) {
	t.Parallel()

	if _, _, err := Classify("statua", 0); err == nil {
		t.Error("Classify on 's' succeeded, want error")
	}
	if _, _, err := Classify("uia", 7); err == nil {
		t.Error("Classify out of bounds succeeded, want error")
	}
	if _, _, err := Classify("", 0); err == nil {
		t.Error("Classify on empty text succeeded, want error")
	}
	if _, _, err := Classify("uia", -1); err == nil {
		t.Error("Classify with negative index succeeded, want error")
	}
}

// ---------------------------------------------------------------------------
// NormalizeDetailed
// ---------------------------------------------------------------------------

func TestNormalizeDetailed(t *testing.T) {
	t.Parallel()

	res := NormalizeDetailed("seruus nouus")
	if res.Normalized != "servus novus" {
		t.Fatalf("Normalized = %q, want %q", res.Normalized, "servus novus")
	}
	if res.Original != "seruus nouus" {
		t.Errorf("Original = %q, want input preserved", res.Original)
	}
	if len(res.Changes) != 2 {
		t.Fatalf("got %d changes, want 2: %+v", len(res.Changes), res.Changes)
	}

	first := res.Changes[0]
	if first.Position != 3 || first.Original != "u" || first.Normalized != "v" {
		t.Errorf("first change = %+v, want position 3 u->v", first)
	}
	if first.Rule != RuleDoubleFirstVCuu {
		t.Errorf("first change rule = %q, want %q", first.Rule, RuleDoubleFirstVCuu)
	}
	if first.Context != "ser[u]us " {
		t.Errorf("first change context = %q, want %q", first.Context, "ser[u]us ")
	}

	second := res.Changes[1]
	if second.Position != 9 || second.Original != "u" || second.Normalized != "v" {
		t.Errorf("second change = %+v, want position 9 u->v", second)
	}
}

func TestNormalizeDetailedNoChanges(t *testing.T) {
	t.Parallel()

	res := NormalizeDetailed("quod erat demonstrandum")
	if res.Normalized != "quod erat demonstrandum" {
		t.Errorf("Normalized = %q, want input unchanged", res.Normalized)
	}
	if len(res.Changes) != 0 {
		t.Errorf("got %d changes, want none: %+v", len(res.Changes), res.Changes)
	}

	empty := NormalizeDetailed("")
	if empty.Original != "" || empty.Normalized != "" || empty.Changes != nil {
		t.Errorf("NormalizeDetailed(\"\") = %+v, want zero result", empty)
	}
}

// ---------------------------------------------------------------------------
// Collapse
// ---------------------------------------------------------------------------

func TestCollapse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"Arma virumque cano", "Arma uirumque cano"},
		{"SERVVS", "SERUUS"},
		{"via", "uia"},
		{"", ""},
		{"nihil mutandum", "nihil mutandum"},
	}
	for _, tt := range tests {
		tt := tt
		if got := Collapse(tt.input); got != tt.want {
			t.Errorf("Collapse(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCollapseNormalizeRoundTrip(t *testing.T) {
	t.Parallel()

	// Collapsing normalized text and normalizing again must reconverge for
	// classical vocabulary.
	for _, text := range []string{"Arma virumque cano", "servus novus fluvius"} {
		collapsed := Collapse(text)
		if got := Normalize(collapsed); got != text {
			t.Errorf("Normalize(Collapse(%q)) = %q, want original", text, got)
		}
	}
}

// ---------------------------------------------------------------------------
// Concurrency
// ---------------------------------------------------------------------------

func TestNormalizeConcurrent(t *testing.T) {
	t.Parallel()

	const goroutines = 16
	var wg sync.WaitGroup
	input := strings.Repeat("Arma uirumque cano seruus nouus ", 10)
	want := Normalize(input)

	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if got := Normalize(input); got != want {
					t.Errorf("concurrent Normalize diverged")
					return
				}
			}
		}()
	}
	wg.Wait()
}
