// Package exgen generates unit exercises with an LLM when a study unit
// has no authored content at the index the selector picked.
package exgen

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/verba-app/verba/internal/content"
	"github.com/verba-app/verba/internal/grader"
	"github.com/verba-app/verba/internal/llm"
	"github.com/verba-app/verba/internal/store"
)

// topicLock pins the model to the unit's grammar point. It is part of
// every generation prompt.
const topicLock = "The generated exercise MUST practice ONLY the grammar point(s) from this unit. " +
	"Do NOT introduce other tenses (e.g., past simple), modals, or unrelated structures."

// defaultForbiddenMarkers are past-tense cues that must not leak into a
// present-tense unit's exercise.
var defaultForbiddenMarkers = []string{
	"yesterday",
	"last week",
	"last month",
	"last year",
	"ago",
	"did ",
	"was ",
	"were ",
}

// Generator produces and persists LLM-generated exercises.
type Generator struct {
	provider llm.Provider
	repo     store.ContentRepo
}

// New creates a Generator.
func New(provider llm.Provider, repo store.ContentRepo) *Generator {
	return &Generator{provider: provider, repo: repo}
}

// EnsureExercise returns the exercise at (unitKey, exerciseIndex),
// generating and persisting one when missing. A nil provider disables
// generation: the caller gets (nil, nil) and treats the unit as
// exhausted.
func (g *Generator) EnsureExercise(ctx context.Context, unitKey string, exerciseIndex int) (*content.Exercise, error) {
	existing, err := g.repo.ExercisesByUnit(ctx, unitKey)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if existing[i].ExerciseIndex == exerciseIndex {
			return &existing[i], nil
		}
	}
	if g.provider == nil {
		return nil, nil
	}

	rules, err := g.repo.RulesByUnit(ctx, unitKey)
	if err != nil {
		return nil, err
	}
	ruleText, examples := ruleContext(rules)

	ex, err := g.generate(ctx, unitKey, exerciseIndex, ruleText, examples)
	if err != nil || ex == nil {
		return ex, err
	}

	if err := g.repo.SaveGenerated(ctx, *ex); err != nil {
		return nil, err
	}
	return ex, nil
}

// generate runs one generation round, with a single constrained retry
// when the output trips the unit's forbidden tense markers. Two strikes
// means no exercise: wrong-tense content does more harm than a shorter
// unit.
func (g *Generator) generate(ctx context.Context, unitKey string, exerciseIndex int, ruleText string, examples []string) (*content.Exercise, error) {
	ctx = llm.WithPurpose(ctx, "exercise-gen")
	markers := forbiddenMarkers(ruleText)

	ex, err := g.requestExercise(ctx, unitKey, exerciseIndex, ruleText, examples, "")
	if err != nil {
		return nil, err
	}
	if !containsMarkers(ex, markers) {
		return ex, nil
	}

	constraint := fmt.Sprintf(
		"The previous output introduced forbidden tense markers. Avoid using these words or phrases: %s. Stay strictly within the unit grammar point.",
		strings.Join(markers, ", "),
	)
	ex, err = g.requestExercise(ctx, unitKey, exerciseIndex, ruleText, examples, constraint)
	if err != nil {
		return nil, err
	}
	if containsMarkers(ex, markers) {
		return nil, nil
	}
	return ex, nil
}

func (g *Generator) requestExercise(ctx context.Context, unitKey string, exerciseIndex int, ruleText string, examples []string, extraConstraint string) (*content.Exercise, error) {
	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      "You are an English grammar exercise author. You produce compact, unambiguous practice exercises as JSON.",
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildPrompt(unitKey, exerciseIndex, ruleText, examples, extraConstraint)}},
		Schema:      exerciseSchema(),
		MaxTokens:   2048,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("generate exercise %s/%d: %w", unitKey, exerciseIndex, err)
	}

	ex, err := parseExercise(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("generated exercise %s/%d: %w", unitKey, exerciseIndex, err)
	}
	ex.UnitKey = unitKey
	ex.ExerciseIndex = exerciseIndex
	return ex, nil
}

func buildPrompt(unitKey string, exerciseIndex int, ruleText string, examples []string, extraConstraint string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create exercise %d for the study unit %q.\n\n", exerciseIndex, unitKey)

	if ruleText != "" {
		b.WriteString("Grammar rules of this unit:\n")
		b.WriteString(ruleText)
		b.WriteString("\n\n")
	} else {
		fmt.Fprintf(&b, "Unit topic: %s. Generate only tasks for this unit topic.\n\n", unitKey)
	}

	if len(examples) > 0 {
		b.WriteString("Example sentences from the unit:\n")
		for _, ex := range examples {
			b.WriteString("- ")
			b.WriteString(ex)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(topicLock)
	b.WriteString("\n\n")

	b.WriteString("Produce one exercise with 4-6 items. Choose the exercise type that fits the rule: " +
		"freetext for transformations and gap fills, mcq for picking one form, multiselect when several options are correct. " +
		"Every item needs a prompt, the canonical answer, and accepted_variants (contracted and expanded forms). " +
		"For mcq and multiselect include 3-5 options per item and list the correct ones in correct_options.\n")

	if extraConstraint != "" {
		b.WriteString("\n")
		b.WriteString(extraConstraint)
		b.WriteString("\n")
	}
	return b.String()
}

// exerciseSchema is the structured-output contract for generation.
func exerciseSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "unit-exercise",
		Description: "One grammar practice exercise with gradable items",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"exercise_type": map[string]any{
					"type": "string",
					"enum": []any{"freetext", "free_text", "mcq", "multiselect"},
				},
				"instruction": map[string]any{"type": "string"},
				"items": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"prompt":            map[string]any{"type": "string"},
							"canonical":         map[string]any{"type": "string"},
							"accepted_variants": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
							"options":           map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
							"correct_options":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						},
						"required": []any{"prompt", "canonical", "accepted_variants"},
					},
				},
			},
			"required": []any{"exercise_type", "instruction", "items"},
		},
	}
}

// parseExercise decodes and validates a generated payload. The model's
// "free_text" spelling is normalized to freetext.
func parseExercise(raw json.RawMessage) (*content.Exercise, error) {
	var payload struct {
		ExerciseType string         `json:"exercise_type"`
		Instruction  string         `json:"instruction"`
		Items        []content.Item `json:"items"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("invalid JSON from LLM: %w", err)
	}

	if payload.ExerciseType == "free_text" {
		payload.ExerciseType = string(grader.ItemFreeText)
	}
	exType := grader.ItemType(payload.ExerciseType)
	switch exType {
	case grader.ItemFreeText, grader.ItemMCQ, grader.ItemMultiSelect:
	default:
		return nil, fmt.Errorf("invalid exercise_type %q", payload.ExerciseType)
	}

	if strings.TrimSpace(payload.Instruction) == "" {
		return nil, fmt.Errorf("instruction required")
	}
	if len(payload.Items) < 2 {
		return nil, fmt.Errorf("at least 2 items required, got %d", len(payload.Items))
	}
	for i, it := range payload.Items {
		if it.Prompt == "" || it.Canonical == "" {
			return nil, fmt.Errorf("item %d: prompt and canonical required", i+1)
		}
		if it.AcceptedVariants == nil {
			return nil, fmt.Errorf("item %d: accepted_variants required", i+1)
		}
		if content.IsChoice(exType) && len(it.Options) == 0 {
			return nil, fmt.Errorf("item %d: options required for %s", i+1, exType)
		}
	}

	return &content.Exercise{
		Type:        exType,
		Instruction: payload.Instruction,
		Items:       payload.Items,
	}, nil
}

// ruleContext flattens a unit's rules into the prompt context: rule
// texts in section order, plus up to six example sentences.
func ruleContext(rules []content.Rule) (string, []string) {
	sorted := make([]content.Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sectionLess(sorted[i].SectionPath, sorted[j].SectionPath)
	})

	var texts []string
	var examples []string
	for _, r := range sorted {
		if t := r.DisplayText(false); t != "" {
			texts = append(texts, t)
		}
		examples = append(examples, r.Examples...)
	}
	if len(examples) > 6 {
		examples = examples[:6]
	}
	return strings.Join(texts, "\n"), examples
}

// sectionLess orders section paths like B12 before C1: alphabetical
// prefix, then numeric suffix. Rules without a section sort last.
func sectionLess(a, b string) bool {
	ea, pa, na := sectionKey(a)
	eb, pb, nb := sectionKey(b)
	if ea != eb {
		return !ea
	}
	if pa != pb {
		return pa < pb
	}
	return na < nb
}

func sectionKey(path string) (empty bool, prefix string, num int) {
	text := strings.TrimSpace(path)
	if text == "" {
		return true, "", 0
	}
	for i, ch := range text {
		if unicode.IsDigit(ch) {
			prefix = strings.ToUpper(text[:i])
			fmt.Sscanf(text[i:], "%d", &num)
			return false, prefix, num
		}
	}
	return false, strings.ToUpper(text), 0
}

// forbiddenMarkers returns the tense markers banned for a unit: the
// past-tense cues when the rule text is about the present and never
// mentions the past, nothing otherwise.
func forbiddenMarkers(ruleText string) []string {
	lower := strings.ToLower(ruleText)
	if strings.Contains(lower, "present") && !strings.Contains(lower, "past") {
		return defaultForbiddenMarkers
	}
	return nil
}

// containsMarkers scans every text the learner could see for banned
// markers.
func containsMarkers(ex *content.Exercise, markers []string) bool {
	if len(markers) == 0 {
		return false
	}
	var collected []string
	collected = append(collected, ex.Instruction)
	for _, it := range ex.Items {
		collected = append(collected, it.Prompt, it.Canonical)
		collected = append(collected, it.Options...)
	}
	blob := strings.ToLower(strings.Join(collected, " "))
	for _, m := range markers {
		if strings.Contains(blob, strings.ToLower(m)) {
			return true
		}
	}
	return false
}
