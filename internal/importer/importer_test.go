package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verba-app/verba/internal/grader"
)

func writeJSON(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadExercisesWrapperAndAliases(t *testing.T) {
	path := writeJSON(t, "exercises.json", `{
		"exercises": [
			{
				"unit_key": "unit_7",
				"exercise_index": 1,
				"exercise_type": "free_text",
				"instruction": "Put the verb in the correct form.",
				"items": [
					{"prompt": "She ___ (go) to school.", "canonical": "goes", "accepted_variants": []}
				]
			}
		]
	}`)

	exercises, err := LoadExercises(path)
	if err != nil {
		t.Fatalf("LoadExercises: %v", err)
	}
	if len(exercises) != 1 {
		t.Fatalf("got %d exercises", len(exercises))
	}
	if exercises[0].Type != grader.ItemFreeText {
		t.Errorf("free_text alias not normalized: %q", exercises[0].Type)
	}
}

func TestLoadExercisesBareArray(t *testing.T) {
	path := writeJSON(t, "exercises.json", `[
		{
			"unit_key": "unit_7",
			"exercise_index": 2,
			"exercise_type": "mcq",
			"instruction": "Choose the correct option.",
			"items": [
				{"prompt": "He ___ tea.", "canonical": "drinks", "options": ["drink", "drinks"]}
			]
		}
	]`)

	exercises, err := LoadExercises(path)
	if err != nil {
		t.Fatalf("LoadExercises: %v", err)
	}
	if exercises[0].ExerciseIndex != 2 {
		t.Errorf("exercise_index = %d", exercises[0].ExerciseIndex)
	}
}

func TestLoadExercisesRejectsInvalid(t *testing.T) {
	path := writeJSON(t, "exercises.json", `[
		{
			"unit_key": "unit_7",
			"exercise_index": 1,
			"exercise_type": "mcq",
			"instruction": "Choose.",
			"items": [{"prompt": "He ___ tea.", "canonical": "drinks"}]
		}
	]`)

	if _, err := LoadExercises(path); err == nil {
		t.Fatal("mcq item without options should fail")
	}
}

func TestLoadPlacementStudyUnitsAndOrder(t *testing.T) {
	path := writeJSON(t, "placement.json", `{
		"items": [
			{
				"unit_key": "unit_3",
				"prompt": "They ___ (play) now.",
				"item_type": "freetext",
				"canonical": "are playing",
				"meta": {"study_units": [3, "12", "present_continuous_1"]}
			}
		]
	}`)

	items, err := LoadPlacement(path)
	if err != nil {
		t.Fatalf("LoadPlacement: %v", err)
	}
	if items[0].OrderIndex != 1 {
		t.Errorf("default order_index = %d, want 1", items[0].OrderIndex)
	}
	want := []string{"unit_3", "unit_12", "present_continuous_1"}
	got := items[0].StudyUnits
	if len(got) != len(want) {
		t.Fatalf("study units = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("study unit %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoadPlacementMissingFields(t *testing.T) {
	path := writeJSON(t, "placement.json", `[
		{"unit_key": "unit_3", "item_type": "freetext", "canonical": "x"}
	]`)

	_, err := LoadPlacement(path)
	if err == nil || !strings.Contains(err.Error(), "prompt") {
		t.Fatalf("missing prompt should fail, got %v", err)
	}
}

func TestLoadRulesKeyFallback(t *testing.T) {
	path := writeJSON(t, "rules.json", `{
		"rules": [
			{"unit_key": "unit_3", "text": "Use the present continuous for actions happening now."}
		]
	}`)

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}
	if rules[0].RuleKey != "unit_3" {
		t.Errorf("rule key fallback = %q, want unit_3", rules[0].RuleKey)
	}
}

func TestCrossCheckReportsGaps(t *testing.T) {
	exercises, err := LoadExercises(writeJSON(t, "exercises.json", `[
		{
			"unit_key": "unit_3",
			"exercise_index": 1,
			"exercise_type": "freetext",
			"instruction": "Fill in.",
			"items": [{"prompt": "p", "canonical": "c"}]
		}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	placement, err := LoadPlacement(writeJSON(t, "placement.json", `[
		{
			"unit_key": "unit_3",
			"prompt": "p",
			"item_type": "freetext",
			"canonical": "c",
			"meta": {"study_units": [3, 4]}
		}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	rules, err := LoadRules(writeJSON(t, "rules.json", `[
		{"unit_key": "unit_3", "text": "rule"}
	]`))
	if err != nil {
		t.Fatal(err)
	}

	problems := CrossCheck(exercises, placement, rules)
	if len(problems) != 2 {
		t.Fatalf("problems = %v, want exercise and rule gap for unit_4", problems)
	}
	for _, p := range problems {
		if !strings.Contains(p, "unit_4") {
			t.Errorf("unexpected problem %q", p)
		}
	}
}
