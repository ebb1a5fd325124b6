package content

import (
	"testing"

	"github.com/verba-app/verba/internal/grader"
)

func TestExerciseValidate(t *testing.T) {
	valid := &Exercise{
		UnitKey:       "unit_1",
		ExerciseIndex: 1,
		Type:          grader.ItemMCQ,
		Instruction:   "Choose the correct form.",
		Items: []Item{
			{Prompt: "She ___ tea.", Canonical: "drinks", Options: []string{"drink", "drinks"}},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid exercise rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Exercise)
	}{
		{"unknown type", func(e *Exercise) { e.Type = "quiz" }},
		{"missing instruction", func(e *Exercise) { e.Instruction = "" }},
		{"no items", func(e *Exercise) { e.Items = nil }},
		{"item missing prompt", func(e *Exercise) { e.Items[0].Prompt = "" }},
		{"item missing canonical", func(e *Exercise) { e.Items[0].Canonical = "" }},
		{"choice item without options", func(e *Exercise) { e.Items[0].Options = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := *valid
			e.Items = append([]Item(nil), valid.Items...)
			tt.mutate(&e)
			if err := e.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestExerciseValidate_FreeTextNeedsNoOptions(t *testing.T) {
	e := &Exercise{
		UnitKey: "unit_1", ExerciseIndex: 2,
		Type:        grader.ItemFreeText,
		Instruction: "Write the sentence.",
		Items:       []Item{{Prompt: "p", Canonical: "c"}},
	}
	if err := e.Validate(); err != nil {
		t.Errorf("free text without options rejected: %v", err)
	}
}

func TestFilterByCause(t *testing.T) {
	items := []Item{
		{Prompt: "a", RuleKeys: []string{"unit_1_A"}},
		{Prompt: "b", RuleKeys: []string{"unit_1_B"}},
		{Prompt: "c"},
	}

	got := FilterByCause(items, []string{"unit_1_B"})
	if len(got) != 1 || got[0].Prompt != "b" {
		t.Errorf("filtered = %d items, want just b", len(got))
	}

	// No overlap falls back to the unfiltered list.
	got = FilterByCause(items, []string{"unit_9_Z"})
	if len(got) != 3 {
		t.Errorf("fallback = %d items, want all 3", len(got))
	}

	// No cause keys: unfiltered.
	if got := FilterByCause(items, nil); len(got) != 3 {
		t.Errorf("nil cause = %d items, want 3", len(got))
	}
}

func TestShownItems_Cap(t *testing.T) {
	ex := &Exercise{Items: []Item{{Prompt: "a"}, {Prompt: "b"}, {Prompt: "c"}}}
	if got := ShownItems(ex, nil, true); len(got) != ShownItemCap {
		t.Errorf("capped = %d, want %d", len(got), ShownItemCap)
	}
	if got := ShownItems(ex, nil, false); len(got) != 3 {
		t.Errorf("uncapped = %d, want 3", len(got))
	}
}

func TestAudit(t *testing.T) {
	exercises := []*Exercise{
		{
			UnitKey: "unit_1", ExerciseIndex: 1, Type: grader.ItemMultiSelect,
			Instruction: "Pick the prepositions.",
			Items: []Item{
				// Legacy: multi-valued canonical, no policy -> warning.
				{Prompt: "p", Canonical: "at, in", Options: []string{"at", "in", "on"}},
				// Declared policy without correct_options -> error.
				{Prompt: "p", Canonical: "at", SelectionPolicy: "all", Options: []string{"at", "in"}},
				// correct_options entry outside options -> error.
				{Prompt: "p", Canonical: "at", SelectionPolicy: "all", Options: []string{"at", "in"},
					CorrectOptions: []string{"at", "under"}},
			},
		},
		{
			UnitKey: "unit_2", ExerciseIndex: 1, Type: grader.ItemMCQ,
			Instruction: "Choose one.",
			Items: []Item{
				// mcq whose canonical names two options -> error.
				{Prompt: "p", Canonical: "do, does", Options: []string{"do", "does"}},
			},
		},
		{
			UnitKey: "unit_3", ExerciseIndex: 1, Type: grader.ItemFreeText,
			Instruction: "Write.",
			Items:       []Item{{Prompt: "p", Canonical: "c, d"}},
		},
	}

	issues := Audit(exercises)

	var warnings, errors int
	for _, is := range issues {
		switch is.Severity {
		case SeverityWarning:
			warnings++
		case SeverityError:
			errors++
		}
	}
	if warnings != 1 {
		t.Errorf("warnings = %d, want 1 (legacy multiselect)", warnings)
	}
	if errors != 3 {
		t.Errorf("errors = %d, want 3, issues: %v", errors, issues)
	}
}

func TestRuleDisplayText(t *testing.T) {
	r := Rule{RuleKey: "unit_1_A", SectionPath: "A1", Text: "long text", ShortText: "short"}
	if got := r.DisplayText(true); got != "A1. short" {
		t.Errorf("short = %q", got)
	}
	if got := r.DisplayText(false); got != "A1. long text" {
		t.Errorf("long = %q", got)
	}
	empty := Rule{Title: "Present simple"}
	if got := empty.DisplayText(true); got != "Present simple" {
		t.Errorf("title fallback = %q", got)
	}
}

func TestPlacementStudyUnits(t *testing.T) {
	p := PlacementItem{UnitKey: "unit_5"}
	if got := p.StudyUnitKeys(); len(got) != 1 || got[0] != "unit_5" {
		t.Errorf("fallback = %v", got)
	}
	p.StudyUnits = []string{"unit_5", "unit_6"}
	if got := p.StudyUnitKeys(); len(got) != 2 {
		t.Errorf("explicit = %v", got)
	}
}
