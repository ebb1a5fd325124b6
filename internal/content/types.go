// Package content models authored and generated practice content: unit
// exercises and their items, placement items, and rule texts.
package content

import (
	"fmt"

	"github.com/verba-app/verba/internal/grader"
)

// Item is one gradable task inside an exercise.
type Item struct {
	Prompt           string   `json:"prompt"`
	Canonical        string   `json:"canonical"`
	AcceptedVariants []string `json:"accepted_variants"`
	Options          []string `json:"options,omitempty"`
	SelectionPolicy  string   `json:"selection_policy,omitempty"`
	CorrectOptions   []string `json:"correct_options,omitempty"`
	OrderSensitive   bool     `json:"order_sensitive,omitempty"`
	RuleKeys         []string `json:"rule_keys,omitempty"`
}

// OptionSpec adapts the item to the grader's option configuration.
func (it Item) OptionSpec() grader.OptionSpec {
	return grader.OptionSpec{
		Canonical:      it.Canonical,
		Options:        it.Options,
		Policy:         grader.SelectionPolicy(it.SelectionPolicy),
		CorrectOptions: it.CorrectOptions,
		OrderSensitive: it.OrderSensitive,
	}
}

// Exercise is an ordered set of items practicing one grammar point.
// ExerciseIndex is the unit's absolute ("book order") numbering.
type Exercise struct {
	UnitKey       string          `json:"unit_key"`
	ExerciseIndex int             `json:"exercise_index"`
	Type          grader.ItemType `json:"exercise_type"`
	Instruction   string          `json:"instruction"`
	Items         []Item          `json:"items"`
}

// IsChoice reports whether the exercise type grades against options.
func IsChoice(t grader.ItemType) bool {
	return t == grader.ItemMCQ || t == grader.ItemMultiSelect
}

// Validate rejects malformed exercises at ingestion so grading never sees
// them: the type must be known, the instruction non-empty, and every item
// needs a prompt, a canonical answer, and options when the type is
// choice-based.
func (e *Exercise) Validate() error {
	switch e.Type {
	case grader.ItemFreeText, grader.ItemMCQ, grader.ItemMultiSelect:
	default:
		return fmt.Errorf("exercise %s/%d: unknown exercise_type %q", e.UnitKey, e.ExerciseIndex, e.Type)
	}
	if e.Instruction == "" {
		return fmt.Errorf("exercise %s/%d: instruction required", e.UnitKey, e.ExerciseIndex)
	}
	if len(e.Items) == 0 {
		return fmt.Errorf("exercise %s/%d: items required", e.UnitKey, e.ExerciseIndex)
	}
	for i, it := range e.Items {
		if it.Prompt == "" || it.Canonical == "" {
			return fmt.Errorf("exercise %s/%d item %d: prompt and canonical required", e.UnitKey, e.ExerciseIndex, i+1)
		}
		if IsChoice(e.Type) && len(it.Options) == 0 {
			return fmt.Errorf("exercise %s/%d item %d: options required for %s", e.UnitKey, e.ExerciseIndex, i+1, e.Type)
		}
	}
	return nil
}

// ShownItemCap is how many items of an exercise a detour or revisit shows.
const ShownItemCap = 2

// FilterByCause keeps the items whose rule keys overlap the due item's
// cause keys, so a learner drills what actually went wrong. Items without
// rule keys never match; if nothing matches the unfiltered list is kept —
// filtering narrows practice, it must never empty it.
func FilterByCause(items []Item, causeKeys []string) []Item {
	if len(causeKeys) == 0 {
		return items
	}
	cause := make(map[string]bool, len(causeKeys))
	for _, k := range causeKeys {
		cause[k] = true
	}
	var filtered []Item
	for _, it := range items {
		for _, k := range it.RuleKeys {
			if cause[k] {
				filtered = append(filtered, it)
				break
			}
		}
	}
	if len(filtered) == 0 {
		return items
	}
	return filtered
}

// ShownItems returns the items a due item of the given kind presents:
// cause-filtered, capped at ShownItemCap for detour and revisit, the full
// filtered list for check.
func ShownItems(e *Exercise, causeKeys []string, capped bool) []Item {
	items := FilterByCause(e.Items, causeKeys)
	if capped && len(items) > ShownItemCap {
		items = items[:ShownItemCap]
	}
	return items
}

// PlacementItem is one question of the initial placement sequence.
type PlacementItem struct {
	ID               int
	OrderIndex       int
	UnitKey          string
	Prompt           string
	Type             grader.ItemType
	Canonical        string
	AcceptedVariants []string
	Options          []string
	SelectionPolicy  string
	CorrectOptions   []string
	Instruction      string
	StudyUnits       []string
}

// StudyUnitKeys returns the units a failing answer to this item implicates,
// falling back to the item's own unit.
func (p PlacementItem) StudyUnitKeys() []string {
	if len(p.StudyUnits) > 0 {
		return p.StudyUnits
	}
	if p.UnitKey != "" {
		return []string{p.UnitKey}
	}
	return nil
}

// Rule is a grammar-rule explanation, addressable by rule key.
type Rule struct {
	RuleKey     string
	UnitKey     string
	SectionPath string
	Title       string
	Text        string
	ShortText   string
	Examples    []string
}

// DisplayText picks the rule text variant: short when asked for and
// available, with title and section fallbacks so a rule never renders
// empty.
func (r Rule) DisplayText(preferShort bool) string {
	text := r.Text
	if preferShort && r.ShortText != "" {
		text = r.ShortText
	}
	if text == "" {
		text = r.ShortText
	}
	if text == "" {
		text = r.Title
	}
	if text != "" && r.SectionPath != "" {
		return r.SectionPath + ". " + text
	}
	return text
}
