package exgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/verba-app/verba/internal/content"
	"github.com/verba-app/verba/internal/grader"
	"github.com/verba-app/verba/internal/llm"
	"github.com/verba-app/verba/internal/store"
)

// fakeContentRepo implements the slice of store.ContentRepo the
// generator touches.
type fakeContentRepo struct {
	store.ContentRepo
	exercises []content.Exercise
	rules     []content.Rule
	saved     []content.Exercise
}

func (f *fakeContentRepo) ExercisesByUnit(_ context.Context, unitKey string) ([]content.Exercise, error) {
	var out []content.Exercise
	for _, ex := range f.exercises {
		if ex.UnitKey == unitKey {
			out = append(out, ex)
		}
	}
	return out, nil
}

func (f *fakeContentRepo) RulesByUnit(_ context.Context, unitKey string) ([]content.Rule, error) {
	return f.rules, nil
}

func (f *fakeContentRepo) SaveGenerated(_ context.Context, ex content.Exercise) error {
	f.saved = append(f.saved, ex)
	return nil
}

func validPayload() json.RawMessage {
	return json.RawMessage(`{
		"exercise_type": "free_text",
		"instruction": "Make the sentence negative.",
		"items": [
			{"prompt": "She works here.", "canonical": "She doesn't work here.", "accepted_variants": ["She does not work here."]},
			{"prompt": "They live in Kyiv.", "canonical": "They don't live in Kyiv.", "accepted_variants": ["They do not live in Kyiv."]}
		]
	}`)
}

func TestEnsureExercise_ExistingSkipsGeneration(t *testing.T) {
	repo := &fakeContentRepo{
		exercises: []content.Exercise{{
			UnitKey:       "present_simple_1",
			ExerciseIndex: 2,
			Type:          grader.ItemFreeText,
			Instruction:   "Fill the gap.",
			Items:         []content.Item{{Prompt: "p", Canonical: "c"}},
		}},
	}
	mock := llm.NewMockProvider()
	g := New(mock, repo)

	ex, err := g.EnsureExercise(context.Background(), "present_simple_1", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex == nil || ex.Instruction != "Fill the gap." {
		t.Fatalf("expected existing exercise, got %+v", ex)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected no LLM calls, got %d", mock.CallCount())
	}
}

func TestEnsureExercise_NilProviderReturnsNil(t *testing.T) {
	g := New(nil, &fakeContentRepo{})
	ex, err := g.EnsureExercise(context.Background(), "present_simple_1", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex != nil {
		t.Fatalf("expected nil exercise, got %+v", ex)
	}
}

func TestEnsureExercise_GeneratesAndPersists(t *testing.T) {
	repo := &fakeContentRepo{}
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPayload()})
	g := New(mock, repo)

	ex, err := g.EnsureExercise(context.Background(), "present_simple_1", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex == nil {
		t.Fatal("expected an exercise")
	}
	if ex.Type != grader.ItemFreeText {
		t.Fatalf("free_text not normalized: %q", ex.Type)
	}
	if ex.UnitKey != "present_simple_1" || ex.ExerciseIndex != 3 {
		t.Fatalf("exercise not pinned to slot: %s/%d", ex.UnitKey, ex.ExerciseIndex)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected 1 saved exercise, got %d", len(repo.saved))
	}
}

func TestEnsureExercise_ForbiddenMarkerRetry(t *testing.T) {
	repo := &fakeContentRepo{
		rules: []content.Rule{{
			RuleKey: "present_simple_1_use",
			UnitKey: "present_simple_1",
			Title:   "Present simple",
			Text:    "Use the present simple for habits and routines.",
		}},
	}
	tainted := json.RawMessage(`{
		"exercise_type": "freetext",
		"instruction": "Make the sentence negative.",
		"items": [
			{"prompt": "She worked here yesterday.", "canonical": "She didn't work here.", "accepted_variants": []},
			{"prompt": "They live in Kyiv.", "canonical": "They don't live in Kyiv.", "accepted_variants": []}
		]
	}`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: tainted},
		llm.MockResponse{Content: validPayload()},
	)
	g := New(mock, repo)

	ex, err := g.EnsureExercise(context.Background(), "present_simple_1", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex == nil {
		t.Fatal("expected retry to produce an exercise")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 LLM calls, got %d", mock.CallCount())
	}
	// The retry prompt must name the banned markers.
	retryPrompt := mock.Calls[1].Messages[0].Content
	if !containsAll(retryPrompt, "forbidden tense markers", "yesterday") {
		t.Fatalf("retry prompt missing constraint: %s", retryPrompt)
	}
}

func TestEnsureExercise_TwoStrikesGivesUp(t *testing.T) {
	repo := &fakeContentRepo{
		rules: []content.Rule{{
			RuleKey: "present_simple_1_use",
			UnitKey: "present_simple_1",
			Title:   "Present simple",
			Text:    "Use the present simple for habits.",
		}},
	}
	tainted := json.RawMessage(`{
		"exercise_type": "freetext",
		"instruction": "Rewrite using last week.",
		"items": [
			{"prompt": "a", "canonical": "b", "accepted_variants": []},
			{"prompt": "c", "canonical": "d", "accepted_variants": []}
		]
	}`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: tainted},
		llm.MockResponse{Content: tainted},
	)
	g := New(mock, repo)

	ex, err := g.EnsureExercise(context.Background(), "present_simple_1", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex != nil {
		t.Fatalf("expected no exercise after two tainted outputs, got %+v", ex)
	}
	if len(repo.saved) != 0 {
		t.Fatal("tainted exercise must not be persisted")
	}
}

func TestParseExercise_Validation(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"bad type", `{"exercise_type":"essay","instruction":"x","items":[{"prompt":"a","canonical":"b","accepted_variants":[]},{"prompt":"c","canonical":"d","accepted_variants":[]}]}`},
		{"empty instruction", `{"exercise_type":"freetext","instruction":"  ","items":[{"prompt":"a","canonical":"b","accepted_variants":[]},{"prompt":"c","canonical":"d","accepted_variants":[]}]}`},
		{"too few items", `{"exercise_type":"freetext","instruction":"x","items":[{"prompt":"a","canonical":"b","accepted_variants":[]}]}`},
		{"missing canonical", `{"exercise_type":"freetext","instruction":"x","items":[{"prompt":"a","canonical":"","accepted_variants":[]},{"prompt":"c","canonical":"d","accepted_variants":[]}]}`},
		{"mcq without options", `{"exercise_type":"mcq","instruction":"x","items":[{"prompt":"a","canonical":"b","accepted_variants":[]},{"prompt":"c","canonical":"d","accepted_variants":[]}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseExercise(json.RawMessage(tc.raw)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestSectionOrdering(t *testing.T) {
	rules := []content.Rule{
		{RuleKey: "r3", Title: "Third", SectionPath: ""},
		{RuleKey: "r2", Title: "Second", SectionPath: "B12"},
		{RuleKey: "r1", Title: "First", SectionPath: "B2"},
	}
	text, _ := ruleContext(rules)
	first := "B2. First"
	second := "B12. Second"
	if !containsAll(text, first, second) {
		t.Fatalf("rule context missing texts: %s", text)
	}
	if strings.Index(text, first) > strings.Index(text, second) {
		t.Fatalf("B2 should sort before B12: %s", text)
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
