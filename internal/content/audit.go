package content

import (
	"fmt"
	"strings"

	"github.com/verba-app/verba/internal/grader"
	"github.com/verba-app/verba/internal/textnorm"
)

// IssueSeverity classifies audit findings.
type IssueSeverity string

const (
	SeverityError   IssueSeverity = "error"
	SeverityWarning IssueSeverity = "warning"
)

// Issue is one data-quality finding from Audit.
type Issue struct {
	Severity      IssueSeverity
	Message       string
	UnitKey       string
	ExerciseIndex int
	ItemIndex     int
}

func (i Issue) String() string {
	return fmt.Sprintf("%s %s/ex%d/item%d: %s", i.Severity, i.UnitKey, i.ExerciseIndex, i.ItemIndex, i.Message)
}

// Audit runs the offline data-quality checks over authored exercises.
// Ambiguity is reported, never fixed: legacy multi-valued canonicals
// without a declared policy come back as warnings (the grading-time
// NeedsReview flag), broken declarations as errors.
func Audit(exercises []*Exercise) []Issue {
	var issues []Issue
	for _, ex := range exercises {
		if !IsChoice(ex.Type) {
			continue
		}
		for idx, it := range ex.Items {
			issues = append(issues, auditChoiceItem(ex, it, idx+1)...)
		}
	}
	return issues
}

func auditChoiceItem(ex *Exercise, it Item, itemIndex int) []Issue {
	var issues []Issue
	report := func(sev IssueSeverity, msg string) {
		issues = append(issues, Issue{
			Severity:      sev,
			Message:       msg,
			UnitKey:       ex.UnitKey,
			ExerciseIndex: ex.ExerciseIndex,
			ItemIndex:     itemIndex,
		})
	}

	if len(it.Options) == 0 {
		return issues
	}

	optionKeys := make(map[string]bool, len(it.Options))
	for _, opt := range it.Options {
		if k := textnorm.ComparisonKey(opt); k != "" {
			optionKeys[k] = true
		}
	}

	policy := grader.SelectionPolicy(it.SelectionPolicy)
	if it.SelectionPolicy != "" && policy != grader.PolicyAny && policy != grader.PolicyAll {
		report(SeverityError, fmt.Sprintf("selection_policy must be %q or %q", grader.PolicyAny, grader.PolicyAll))
	}

	if it.CorrectOptions != nil {
		if len(it.CorrectOptions) == 0 {
			report(SeverityError, "correct_options must be a non-empty list")
		}
		for _, raw := range it.CorrectOptions {
			if !optionKeys[textnorm.ComparisonKey(raw)] {
				report(SeverityError, fmt.Sprintf("correct_options entry %q not in options", raw))
			}
		}
	} else if it.SelectionPolicy != "" {
		report(SeverityError, fmt.Sprintf("selection_policy=%q requires correct_options", it.SelectionPolicy))
	}

	parts := canonicalParts(it.Canonical)
	allResolve := len(parts) > 0
	for _, p := range parts {
		if !optionKeys[textnorm.ComparisonKey(p)] {
			allResolve = false
			break
		}
	}

	if ex.Type == grader.ItemMCQ && len(parts) > 1 && allResolve {
		report(SeverityError, "mcq canonical matches multiple options")
	}
	if ex.Type == grader.ItemMultiSelect && it.SelectionPolicy == "" && len(parts) > 1 && allResolve {
		report(SeverityWarning, "multiselect canonical lists multiple options without selection_policy (graded with inferred policy)")
	}
	return issues
}

func canonicalParts(canonical string) []string {
	var parts []string
	for _, p := range strings.Split(canonical, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
