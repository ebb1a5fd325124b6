package grader

import (
	"strings"
	"testing"
)

func anySpec() OptionSpec {
	return OptionSpec{
		Canonical:      "do",
		Options:        []string{"do", "does", "doing"},
		CorrectOptions: []string{"do"},
	}
}

func TestResolveOptionConfig_ExplicitCorrectOptions(t *testing.T) {
	cfg := ResolveOptionConfig(ItemMCQ, anySpec(), "")
	if !cfg.Explicit {
		t.Fatal("expected Explicit")
	}
	if cfg.Policy != PolicyAny {
		t.Errorf("policy = %s, want any", cfg.Policy)
	}
	if len(cfg.Correct) != 1 || cfg.Correct[0] != "do" {
		t.Errorf("correct = %v, want [do]", cfg.Correct)
	}
	if cfg.NeedsReview {
		t.Error("explicit config must not need review")
	}
}

func TestResolveOptionConfig_DropsUnresolvableEntries(t *testing.T) {
	spec := OptionSpec{
		Options:        []string{"do", "does"},
		CorrectOptions: []string{"do", "nonsense"},
	}
	cfg := ResolveOptionConfig(ItemMCQ, spec, "")
	if len(cfg.Correct) != 1 || cfg.Correct[0] != "do" {
		t.Errorf("correct = %v, want [do]", cfg.Correct)
	}
}

func TestResolveOptionConfig_DerivedFromCanonical(t *testing.T) {
	spec := OptionSpec{
		Canonical: "Does",
		Options:   []string{"do", "does", "doing"},
	}
	cfg := ResolveOptionConfig(ItemMCQ, spec, "")
	if cfg.Explicit {
		t.Error("derived config must not be Explicit")
	}
	if len(cfg.Correct) != 1 || cfg.Correct[0] != "does" {
		t.Errorf("correct = %v, want [does]", cfg.Correct)
	}
}

func TestResolveOptionConfig_LegacyMultiCanonical(t *testing.T) {
	spec := OptionSpec{
		Canonical: "do, does",
		Options:   []string{"do", "does", "doing"},
	}

	cfg := ResolveOptionConfig(ItemMultiSelect, spec, "Select all forms that fit.")
	if !cfg.NeedsReview {
		t.Error("expected NeedsReview for multi-valued canonical without policy")
	}
	if cfg.Policy != PolicyAll {
		t.Errorf("policy = %s, want all (instruction cue)", cfg.Policy)
	}
	if len(cfg.Correct) != 2 {
		t.Errorf("correct = %v, want 2 entries", cfg.Correct)
	}

	cfg = ResolveOptionConfig(ItemMultiSelect, spec, "Choose one form.")
	if cfg.Policy != PolicyAny {
		t.Errorf("policy = %s, want any (instruction cue)", cfg.Policy)
	}

	cfg = ResolveOptionConfig(ItemMultiSelect, spec, "Fill in the gaps.")
	if cfg.Policy != PolicyAll {
		t.Errorf("policy = %s, want all (multiselect default)", cfg.Policy)
	}
}

func TestResolveOptionConfig_DefaultPolicies(t *testing.T) {
	spec := OptionSpec{Canonical: "do", Options: []string{"do", "does"}}
	if cfg := ResolveOptionConfig(ItemMCQ, spec, ""); cfg.Policy != PolicyAny {
		t.Errorf("mcq default = %s, want any", cfg.Policy)
	}
	if cfg := ResolveOptionConfig(ItemMultiSelect, spec, ""); cfg.Policy != PolicyAll {
		t.Errorf("multiselect default = %s, want all", cfg.Policy)
	}
}

func TestGradeOption_AnyByLetter(t *testing.T) {
	spec := anySpec()
	cfg := ResolveOptionConfig(ItemMCQ, spec, "")

	r := GradeOption("A", spec, cfg)
	if r.Verdict != VerdictCorrect {
		t.Errorf("verdict = %s, want correct", r.Verdict)
	}
	if r.Answer != "do" {
		t.Errorf("answer = %q, want %q", r.Answer, "do")
	}
}

func TestGradeOption_AnyByIndexAndText(t *testing.T) {
	spec := anySpec()
	cfg := ResolveOptionConfig(ItemMCQ, spec, "")

	if r := GradeOption("1", spec, cfg); r.Verdict != VerdictCorrect {
		t.Errorf("index: verdict = %s, want correct", r.Verdict)
	}
	if r := GradeOption("Do", spec, cfg); r.Verdict != VerdictCorrect {
		t.Errorf("text: verdict = %s, want correct", r.Verdict)
	}
	if r := GradeOption("B", spec, cfg); r.Verdict != VerdictWrong {
		t.Errorf("wrong option: verdict = %s, want wrong", r.Verdict)
	}
}

func TestGradeOption_AnyMultipleSelections(t *testing.T) {
	spec := OptionSpec{
		Canonical:      "do / does",
		Options:        []string{"do", "does", "doing"},
		Policy:         PolicyAny,
		CorrectOptions: []string{"do", "does"},
	}
	cfg := ResolveOptionConfig(ItemMCQ, spec, "")

	if r := GradeOption("A", spec, cfg); r.Verdict != VerdictCorrect {
		t.Errorf("single pick: verdict = %s, want correct", r.Verdict)
	}

	r := GradeOption("A,B", spec, cfg)
	if r.Verdict != VerdictAlmost {
		t.Errorf("two picks with overlap: verdict = %s, want almost", r.Verdict)
	}
	if r.Note != "choose ONE option" {
		t.Errorf("note = %q, want %q", r.Note, "choose ONE option")
	}

	if r := GradeOption("C, C", spec, cfg); r.Verdict != VerdictWrong {
		t.Errorf("picks outside correct set: verdict = %s, want wrong", r.Verdict)
	}
}

func TestGradeOption_AnyCanonicalDisplayJoin(t *testing.T) {
	spec := OptionSpec{
		Canonical:      "do, does",
		Options:        []string{"do", "does", "doing"},
		Policy:         PolicyAny,
		CorrectOptions: []string{"do", "does"},
	}
	cfg := ResolveOptionConfig(ItemMCQ, spec, "")
	r := GradeOption("C", spec, cfg)
	if r.Canonical != "do / does" {
		t.Errorf("canonical = %q, want %q", r.Canonical, "do / does")
	}
}

func TestGradeOption_AllUnordered(t *testing.T) {
	spec := OptionSpec{
		Canonical:      "at, in",
		Options:        []string{"at", "in", "on", "by"},
		Policy:         PolicyAll,
		CorrectOptions: []string{"at", "in"},
	}
	cfg := ResolveOptionConfig(ItemMultiSelect, spec, "")

	if r := GradeOption("in, at", spec, cfg); r.Verdict != VerdictCorrect {
		t.Errorf("set equality any order: verdict = %s, want correct", r.Verdict)
	}

	r := GradeOption("at, on", spec, cfg)
	if r.Verdict != VerdictAlmost {
		t.Errorf("partial overlap: verdict = %s, want almost", r.Verdict)
	}
	if !strings.Contains(r.Note, "missing: in") || !strings.Contains(r.Note, "extra: on") {
		t.Errorf("note = %q, want missing/extra lists", r.Note)
	}

	if r := GradeOption("on, by", spec, cfg); r.Verdict != VerdictWrong {
		t.Errorf("zero overlap: verdict = %s, want wrong (never almost)", r.Verdict)
	}

	if r := GradeOption("at", spec, cfg); r.Verdict != VerdictAlmost {
		t.Errorf("incomplete subset: verdict = %s, want almost", r.Verdict)
	}
}

func TestGradeOption_AllOrderSensitive(t *testing.T) {
	spec := OptionSpec{
		Canonical:      "first, second",
		Options:        []string{"first", "second", "third"},
		Policy:         PolicyAll,
		CorrectOptions: []string{"first", "second"},
		OrderSensitive: true,
	}
	cfg := ResolveOptionConfig(ItemMultiSelect, spec, "")

	if r := GradeOption("first, second", spec, cfg); r.Verdict != VerdictCorrect {
		t.Errorf("exact sequence: verdict = %s, want correct", r.Verdict)
	}
	if r := GradeOption("second, first", spec, cfg); r.Verdict != VerdictWrong {
		t.Errorf("wrong order: verdict = %s, want wrong", r.Verdict)
	}
	if r := GradeOption("A, B", spec, cfg); r.Verdict != VerdictCorrect {
		t.Errorf("letters in order: verdict = %s, want correct", r.Verdict)
	}
}

func TestGradeOption_UnmappableAnswer(t *testing.T) {
	spec := OptionSpec{
		Canonical:      "do",
		Options:        []string{"do", "does"},
		CorrectOptions: []string{"do"},
	}
	cfg := ResolveOptionConfig(ItemMCQ, spec, "")
	r := GradeOption("zzz", spec, cfg)
	if r.Verdict != VerdictWrong {
		t.Errorf("verdict = %s, want wrong", r.Verdict)
	}
	if r.Answer != "—" {
		t.Errorf("answer = %q, want em dash placeholder", r.Answer)
	}
}

func TestGradeOption_LegacyCanonicalFallback(t *testing.T) {
	// No explicit correct options and the canonical text is not an option:
	// the old direct-match path still accepts the canonical typed verbatim.
	spec := OptionSpec{
		Canonical: "have been",
		Options:   []string{"was", "were"},
	}
	cfg := ResolveOptionConfig(ItemMCQ, spec, "")
	if len(cfg.Correct) != 0 {
		t.Fatalf("correct = %v, want empty", cfg.Correct)
	}

	if r := GradeOption("have been", spec, cfg); r.Verdict != VerdictCorrect {
		t.Errorf("legacy text match: verdict = %s, want correct", r.Verdict)
	}
	if r := GradeOption("something else", spec, cfg); r.Verdict != VerdictWrong {
		t.Errorf("legacy miss: verdict = %s, want wrong", r.Verdict)
	}
}

func TestGradeOption_DeduplicatesSelections(t *testing.T) {
	spec := OptionSpec{
		Canonical:      "at, in",
		Options:        []string{"at", "in", "on"},
		Policy:         PolicyAll,
		CorrectOptions: []string{"at", "in"},
	}
	cfg := ResolveOptionConfig(ItemMultiSelect, spec, "")
	// "A, 1, at, B" collapses to [at, in].
	if r := GradeOption("A, 1, at, B", spec, cfg); r.Verdict != VerdictCorrect {
		t.Errorf("verdict = %s, want correct after dedup", r.Verdict)
	}
}
