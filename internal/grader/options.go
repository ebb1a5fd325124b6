package grader

import (
	"strings"
	"unicode"

	"github.com/verba-app/verba/internal/textnorm"
)

// SelectionPolicy says how many of the correct options must be picked.
type SelectionPolicy string

const (
	// PolicyAny accepts exactly one selection from the correct set.
	PolicyAny SelectionPolicy = "any"
	// PolicyAll requires the full correct set.
	PolicyAll SelectionPolicy = "all"
)

// OptionSpec is the option-relevant part of an item specification.
type OptionSpec struct {
	Canonical      string
	Options        []string
	Policy         SelectionPolicy // empty when the item doesn't declare one
	CorrectOptions []string        // explicit correct subset, may be nil
	OrderSensitive bool
}

// OptionConfig is the resolved grading configuration for an option item.
type OptionConfig struct {
	Policy   SelectionPolicy
	Correct  []string // correct option texts, in option order for derived sets
	Explicit bool     // correct options were declared, not derived
	// NeedsReview marks legacy items whose canonical lists several options
	// without a declared policy. The applied policy is a best-effort
	// inference; the validate command surfaces these for data cleanup.
	NeedsReview bool
}

// selectAllCues and chooseOneCues are instruction-text phrases used to
// infer a selection policy for legacy items.
var selectAllCues = []string{
	"select all", "choose all", "tick all", "mark all", "all that apply",
	"all correct", "all of the",
}

var chooseOneCues = []string{
	"choose one", "select one", "pick one", "only one", "one option",
	"one answer", "the correct option", "the best option",
}

// ResolveOptionConfig determines the effective selection policy and correct
// option set for an option item. Explicit correct_options entries that do
// not resolve to any option are dropped silently. When no explicit set is
// given the canonical answer is consulted; a legacy multi-valued canonical
// flags NeedsReview and falls back to instruction-text cues for the policy.
func ResolveOptionConfig(itemType ItemType, spec OptionSpec, instruction string) OptionConfig {
	byKey := optionKeyIndex(spec.Options)

	cfg := OptionConfig{Policy: spec.Policy}

	if len(spec.CorrectOptions) > 0 {
		cfg.Explicit = true
		seen := make(map[string]bool)
		for _, raw := range spec.CorrectOptions {
			opt, ok := byKey[textnorm.ComparisonKey(raw)]
			if !ok || seen[opt] {
				continue
			}
			seen[opt] = true
			cfg.Correct = append(cfg.Correct, opt)
		}
		if cfg.Policy == "" {
			cfg.Policy = defaultPolicy(itemType)
		}
		return cfg
	}

	parts := canonicalParts(spec.Canonical)
	switch {
	case len(parts) == 1:
		if opt, ok := byKey[textnorm.ComparisonKey(parts[0])]; ok {
			cfg.Correct = []string{opt}
		}
	case len(parts) > 1 && allResolve(parts, byKey):
		cfg.NeedsReview = true
		for _, p := range parts {
			cfg.Correct = append(cfg.Correct, byKey[textnorm.ComparisonKey(p)])
		}
		if cfg.Policy == "" {
			cfg.Policy = inferPolicyFromInstruction(instruction)
		}
	}

	if cfg.Policy == "" {
		cfg.Policy = defaultPolicy(itemType)
	}
	return cfg
}

// GradeOption grades an answer against an option item using the resolved
// config. The raw answer is tokenized and each token mapped to an option by
// letter (A, B, ...), 1-based index, or text; unmatched tokens are ignored
// and duplicates collapse.
func GradeOption(answer string, spec OptionSpec, cfg OptionConfig) Result {
	canonicalDisplay := canonicalOptionDisplay(spec, cfg)

	selected := mapSelections(answer, spec.Options)
	if len(selected) == 0 {
		// Legacy fallback: items graded as "any" before correct_options
		// existed stored the answer text in canonical. Match directly.
		if cfg.Policy == PolicyAny && !cfg.Explicit {
			if legacyCanonicalMatch(answer, spec) {
				return Result{
					Verdict:   VerdictCorrect,
					Answer:    textnorm.Display(answer),
					Canonical: canonicalDisplay,
				}
			}
		}
		return Result{Verdict: VerdictWrong, Answer: "—", Canonical: canonicalDisplay}
	}

	answerDisplay := textnorm.Display(strings.Join(selected, ", "))

	correctKeys := make(map[string]bool, len(cfg.Correct))
	for _, c := range cfg.Correct {
		correctKeys[textnorm.ComparisonKey(c)] = true
	}

	switch cfg.Policy {
	case PolicyAny:
		return gradeAny(selected, correctKeys, answerDisplay, canonicalDisplay)
	case PolicyAll:
		if spec.OrderSensitive {
			return gradeAllOrdered(selected, cfg.Correct, answerDisplay, canonicalDisplay)
		}
		return gradeAllUnordered(selected, cfg.Correct, correctKeys, answerDisplay, canonicalDisplay)
	}
	return Result{Verdict: VerdictWrong, Answer: answerDisplay, Canonical: canonicalDisplay}
}

func gradeAny(selected []string, correctKeys map[string]bool, answerDisplay, canonicalDisplay string) Result {
	overlap := 0
	for _, s := range selected {
		if correctKeys[textnorm.ComparisonKey(s)] {
			overlap++
		}
	}
	if len(selected) == 1 {
		if overlap == 1 {
			return Result{Verdict: VerdictCorrect, Answer: answerDisplay, Canonical: canonicalDisplay}
		}
		return Result{Verdict: VerdictWrong, Answer: answerDisplay, Canonical: canonicalDisplay}
	}
	if overlap > 0 {
		return Result{
			Verdict:   VerdictAlmost,
			Answer:    answerDisplay,
			Canonical: canonicalDisplay,
			Note:      "choose ONE option",
		}
	}
	return Result{Verdict: VerdictWrong, Answer: answerDisplay, Canonical: canonicalDisplay}
}

func gradeAllOrdered(selected, correct []string, answerDisplay, canonicalDisplay string) Result {
	if len(selected) == len(correct) {
		match := true
		for i := range selected {
			if textnorm.ComparisonKey(selected[i]) != textnorm.ComparisonKey(correct[i]) {
				match = false
				break
			}
		}
		if match {
			return Result{Verdict: VerdictCorrect, Answer: answerDisplay, Canonical: canonicalDisplay}
		}
	}
	return Result{Verdict: VerdictWrong, Answer: answerDisplay, Canonical: canonicalDisplay}
}

func gradeAllUnordered(selected, correct []string, correctKeys map[string]bool, answerDisplay, canonicalDisplay string) Result {
	selectedKeys := make(map[string]bool, len(selected))
	overlap := 0
	for _, s := range selected {
		k := textnorm.ComparisonKey(s)
		selectedKeys[k] = true
		if correctKeys[k] {
			overlap++
		}
	}

	if overlap == len(correctKeys) && len(selectedKeys) == len(correctKeys) {
		return Result{Verdict: VerdictCorrect, Answer: answerDisplay, Canonical: canonicalDisplay}
	}
	if overlap == 0 {
		return Result{Verdict: VerdictWrong, Answer: answerDisplay, Canonical: canonicalDisplay}
	}

	var missing, extra []string
	for _, c := range correct {
		if !selectedKeys[textnorm.ComparisonKey(c)] {
			missing = append(missing, c)
		}
	}
	for _, s := range selected {
		if !correctKeys[textnorm.ComparisonKey(s)] {
			extra = append(extra, s)
		}
	}
	return Result{
		Verdict:   VerdictAlmost,
		Answer:    answerDisplay,
		Canonical: canonicalDisplay,
		Note:      partialNote(missing, extra),
	}
}

func partialNote(missing, extra []string) string {
	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "missing: "+strings.Join(missing, ", "))
	}
	if len(extra) > 0 {
		parts = append(parts, "extra: "+strings.Join(extra, ", "))
	}
	return strings.Join(parts, "; ")
}

// mapSelections maps answer tokens to option texts, deduplicated, in the
// order the learner gave them. A single letter selects by position
// (A=first), digits select by 1-based index, anything else matches by
// comparison key. Tokens that resolve to nothing are dropped.
func mapSelections(answer string, options []string) []string {
	byKey := optionKeyIndex(options)

	var out []string
	seen := make(map[string]bool)
	add := func(opt string) {
		if !seen[opt] {
			seen[opt] = true
			out = append(out, opt)
		}
	}

	for _, tok := range tokenize(answer) {
		if opt, ok := resolveToken(tok, options, byKey); ok {
			add(opt)
		}
	}
	return out
}

func tokenize(answer string) []string {
	toks := textnorm.SplitMulti(answer)
	if len(toks) == 0 {
		if t := strings.TrimSpace(answer); t != "" {
			return []string{t}
		}
	}
	return toks
}

func resolveToken(tok string, options []string, byKey map[string]string) (string, bool) {
	runes := []rune(tok)
	if len(runes) == 1 && unicode.IsLetter(runes[0]) {
		idx := int(unicode.ToUpper(runes[0])) - 'A'
		if idx >= 0 && idx < len(options) {
			return options[idx], true
		}
		return "", false
	}
	if isDigits(tok) {
		idx := 0
		for _, r := range tok {
			idx = idx*10 + int(r-'0')
		}
		if idx >= 1 && idx <= len(options) {
			return options[idx-1], true
		}
		return "", false
	}
	opt, ok := byKey[textnorm.ComparisonKey(tok)]
	return opt, ok
}

// legacyCanonicalMatch retries the answer as a direct choice against the
// canonical text, the way single-choice items were graded before explicit
// correct_options existed.
func legacyCanonicalMatch(answer string, spec OptionSpec) bool {
	canonicalKey := textnorm.ComparisonKey(spec.Canonical)
	if canonicalKey == "" {
		return false
	}
	answerKey := textnorm.ComparisonKey(answer)
	if answerKey == canonicalKey {
		return true
	}
	byKey := optionKeyIndex(spec.Options)
	if opt, ok := resolveToken(strings.TrimSpace(answer), spec.Options, byKey); ok {
		return textnorm.ComparisonKey(opt) == canonicalKey
	}
	return false
}

// canonicalOptionDisplay renders the correct answer for feedback: the
// resolved correct options joined with " / " when any one of several would
// do, comma-joined otherwise, or the raw canonical when nothing resolved.
func canonicalOptionDisplay(spec OptionSpec, cfg OptionConfig) string {
	if len(cfg.Correct) == 0 {
		return textnorm.Display(spec.Canonical)
	}
	if cfg.Policy == PolicyAny && len(cfg.Correct) >= 2 {
		return strings.Join(cfg.Correct, " / ")
	}
	return strings.Join(cfg.Correct, ", ")
}

func optionKeyIndex(options []string) map[string]string {
	byKey := make(map[string]string, len(options))
	for _, opt := range options {
		k := textnorm.ComparisonKey(opt)
		if k == "" {
			continue
		}
		if _, dup := byKey[k]; !dup {
			byKey[k] = opt
		}
	}
	return byKey
}

func canonicalParts(canonical string) []string {
	var parts []string
	for _, p := range strings.Split(canonical, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func allResolve(parts []string, byKey map[string]string) bool {
	for _, p := range parts {
		if _, ok := byKey[textnorm.ComparisonKey(p)]; !ok {
			return false
		}
	}
	return true
}

func defaultPolicy(itemType ItemType) SelectionPolicy {
	if itemType == ItemMultiSelect {
		return PolicyAll
	}
	return PolicyAny
}

func inferPolicyFromInstruction(instruction string) SelectionPolicy {
	lower := strings.ToLower(instruction)
	for _, cue := range selectAllCues {
		if strings.Contains(lower, cue) {
			return PolicyAll
		}
	}
	for _, cue := range chooseOneCues {
		if strings.Contains(lower, cue) {
			return PolicyAny
		}
	}
	return ""
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
