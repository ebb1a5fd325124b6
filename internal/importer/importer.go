// Package importer loads authored content files (exercises, placement,
// rules) from JSON and checks them before they replace the store's copy.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/verba-app/verba/internal/content"
	"github.com/verba-app/verba/internal/grader"
)

// LoadExercises parses a unit-exercises file. Accepts either a bare
// array or an {"exercises": [...]} wrapper. Every exercise is validated;
// the first invalid one aborts the load.
func LoadExercises(path string) ([]content.Exercise, error) {
	var wrapper struct {
		Exercises []content.Exercise `json:"exercises"`
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	exercises, err := decodeListOrWrapper(raw, &wrapper, func() []content.Exercise { return wrapper.Exercises })
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for i := range exercises {
		normalizeExercise(&exercises[i])
		if err := exercises[i].Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return exercises, nil
}

// placementWire is the authored placement format. study_units live under
// meta and may be bare unit numbers.
type placementWire struct {
	OrderIndex       *int     `json:"order_index"`
	UnitKey          string   `json:"unit_key"`
	Prompt           string   `json:"prompt"`
	ItemType         string   `json:"item_type"`
	Canonical        string   `json:"canonical"`
	AcceptedVariants []string `json:"accepted_variants"`
	Options          []string `json:"options"`
	SelectionPolicy  string   `json:"selection_policy"`
	CorrectOptions   []string `json:"correct_options"`
	Instruction      string   `json:"instruction"`
	Meta             struct {
		StudyUnits []json.RawMessage `json:"study_units"`
	} `json:"meta"`
}

// LoadPlacement parses a placement file. Accepts a bare array or an
// {"items": [...]} wrapper. Missing order_index defaults to the item's
// position.
func LoadPlacement(path string) ([]content.PlacementItem, error) {
	var wrapper struct {
		Items []placementWire `json:"items"`
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rows, err := decodeListOrWrapper(raw, &wrapper, func() []placementWire { return wrapper.Items })
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	items := make([]content.PlacementItem, 0, len(rows))
	for i, row := range rows {
		order := i + 1
		if row.OrderIndex != nil {
			order = *row.OrderIndex
		}
		item := content.PlacementItem{
			OrderIndex:       order,
			UnitKey:          row.UnitKey,
			Prompt:           row.Prompt,
			Type:             normalizeItemType(row.ItemType),
			Canonical:        row.Canonical,
			AcceptedVariants: row.AcceptedVariants,
			Options:          row.Options,
			SelectionPolicy:  row.SelectionPolicy,
			CorrectOptions:   row.CorrectOptions,
			Instruction:      row.Instruction,
		}
		for _, raw := range row.Meta.StudyUnits {
			if key := normalizeUnitKey(raw); key != "" {
				item.StudyUnits = append(item.StudyUnits, key)
			}
		}
		if err := validatePlacement(item, i+1); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		items = append(items, item)
	}
	return items, nil
}

type ruleWire struct {
	RuleKey     string   `json:"rule_key"`
	UnitKey     string   `json:"unit_key"`
	SectionPath string   `json:"section_path"`
	Title       string   `json:"title"`
	Text        string   `json:"text"`
	ShortText   string   `json:"short_text"`
	Examples    []string `json:"examples"`
}

// LoadRules parses a rules file. Accepts a bare array or a
// {"rules": [...]} wrapper. A rule without an explicit key falls back
// to its unit key.
func LoadRules(path string) ([]content.Rule, error) {
	var wrapper struct {
		Rules []ruleWire `json:"rules"`
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rows, err := decodeListOrWrapper(raw, &wrapper, func() []ruleWire { return wrapper.Rules })
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	rules := make([]content.Rule, 0, len(rows))
	for i, row := range rows {
		key := row.RuleKey
		if key == "" {
			key = row.UnitKey
		}
		if key == "" {
			return nil, fmt.Errorf("%s: rule %d: rule_key or unit_key required", path, i+1)
		}
		if row.Text == "" && row.ShortText == "" {
			return nil, fmt.Errorf("%s: rule %q: text or short_text required", path, key)
		}
		rules = append(rules, content.Rule{
			RuleKey:     key,
			UnitKey:     row.UnitKey,
			SectionPath: row.SectionPath,
			Title:       row.Title,
			Text:        row.Text,
			ShortText:   row.ShortText,
			Examples:    row.Examples,
		})
	}
	return rules, nil
}

// CrossCheck verifies the three content files agree: every unit a
// placement item can send a learner to needs a first exercise to drill
// and a rule to show. Returned strings are human-readable problems.
func CrossCheck(exercises []content.Exercise, placement []content.PlacementItem, rules []content.Rule) []string {
	firstExercise := make(map[string]bool)
	for _, ex := range exercises {
		if ex.ExerciseIndex == 1 {
			firstExercise[ex.UnitKey] = true
		}
	}
	ruleUnits := make(map[string]bool)
	for _, r := range rules {
		if r.UnitKey != "" {
			ruleUnits[r.UnitKey] = true
		}
	}

	studyUnits := make(map[string]bool)
	for _, p := range placement {
		for _, u := range p.StudyUnitKeys() {
			studyUnits[u] = true
		}
	}

	var problems []string
	for _, unit := range sortedKeys(studyUnits) {
		if !firstExercise[unit] {
			problems = append(problems, fmt.Sprintf("exercises: missing exercise_index=1 for %s", unit))
		}
		if !ruleUnits[unit] {
			problems = append(problems, fmt.Sprintf("rules: missing rule for %s", unit))
		}
	}
	return problems
}

// decodeListOrWrapper accepts the two shapes authored files come in: a
// bare JSON array, or an object wrapping the array under a known key.
func decodeListOrWrapper[T any](raw []byte, wrapper any, fromWrapper func() []T) ([]T, error) {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var list []T
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("parse: %w", err)
		}
		return list, nil
	}
	if err := json.Unmarshal(raw, wrapper); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return fromWrapper(), nil
}

func normalizeExercise(ex *content.Exercise) {
	ex.Type = normalizeItemType(string(ex.Type))
}

// normalizeItemType maps authored aliases onto the grader's type names.
func normalizeItemType(t string) grader.ItemType {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "free_text", "freetext", "text":
		return grader.ItemFreeText
	case "mcq", "choice":
		return grader.ItemMCQ
	case "multiselect", "multi_select":
		return grader.ItemMultiSelect
	}
	return grader.ItemType(t)
}

// normalizeUnitKey turns a study-unit reference into a unit key: bare
// numbers (JSON or string) become "unit_N", strings pass through.
func normalizeUnitKey(raw json.RawMessage) string {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return fmt.Sprintf("unit_%d", n)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if _, err := strconv.Atoi(s); err == nil {
		return "unit_" + s
	}
	return s
}

func validatePlacement(p content.PlacementItem, pos int) error {
	if p.UnitKey == "" || p.Prompt == "" || p.Canonical == "" {
		return fmt.Errorf("placement item %d: unit_key, prompt, and canonical required", pos)
	}
	switch p.Type {
	case grader.ItemFreeText, grader.ItemMCQ, grader.ItemMultiSelect:
	default:
		return fmt.Errorf("placement item %d: unknown item_type %q", pos, p.Type)
	}
	if content.IsChoice(p.Type) && len(p.Options) == 0 {
		return fmt.Errorf("placement item %d: options required for %s", pos, p.Type)
	}
	return nil
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
