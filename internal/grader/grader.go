// Package grader turns a raw learner answer and an item specification into
// a verdict. It covers free-text fuzzy matching and option-based grading
// (single choice and multi-select) with policy resolution.
package grader

import (
	"github.com/agext/levenshtein"

	"github.com/verba-app/verba/internal/textnorm"
)

// Verdict is the grading outcome for one answer.
type Verdict string

const (
	VerdictCorrect Verdict = "correct"
	VerdictAlmost  Verdict = "almost"
	VerdictWrong   Verdict = "wrong"
)

// Strictness controls how lenient grading and acceptance are.
type Strictness string

const (
	StrictnessEasy   Strictness = "easy"
	StrictnessNormal Strictness = "normal"
	StrictnessStrict Strictness = "strict"
)

// ParseStrictness returns the Strictness for s, or the fallback when s is
// not one of the known modes.
func ParseStrictness(s string, fallback Strictness) Strictness {
	switch Strictness(s) {
	case StrictnessEasy, StrictnessNormal, StrictnessStrict:
		return Strictness(s)
	}
	return fallback
}

// ItemType tags how an item is answered.
type ItemType string

const (
	ItemFreeText    ItemType = "freetext"
	ItemMCQ         ItemType = "mcq"
	ItemMultiSelect ItemType = "multiselect"
)

// Result carries the verdict plus everything the presentation layer needs
// for feedback: the learner's answer in display form, the canonical answer
// to show, and an optional note (e.g. "choose ONE option").
type Result struct {
	Verdict   Verdict
	Answer    string
	Canonical string
	Note      string
}

// GradeFreeText grades a free-text answer against the canonical answer and
// its accepted variants. Exact matches (by comparison key) are correct
// regardless of strictness. Near misses within the edit-distance threshold
// are correct under easy and almost under normal/strict.
func GradeFreeText(answer, canonical string, variants []string, mode Strictness) Result {
	answerDisplay := textnorm.Display(answer)
	answerKey := textnorm.ComparisonKey(answer)
	canonicalDisplay := textnorm.Display(canonical)

	targets := make([]string, 0, 1+len(variants))
	targets = append(targets, textnorm.ComparisonKey(canonical))
	for _, v := range variants {
		if k := textnorm.ComparisonKey(v); k != "" {
			targets = append(targets, k)
		}
	}

	if answerKey != "" {
		for _, t := range targets {
			if answerKey == t {
				return Result{Verdict: VerdictCorrect, Answer: answerDisplay, Canonical: canonicalDisplay}
			}
		}
	}

	close := false
	if answerKey != "" {
		for _, t := range targets {
			if t != "" && withinEditThreshold(answerKey, t) {
				close = true
				break
			}
		}
	}

	switch {
	case close && mode == StrictnessEasy:
		return Result{Verdict: VerdictCorrect, Answer: answerDisplay, Canonical: canonicalDisplay}
	case close:
		return Result{Verdict: VerdictAlmost, Answer: answerDisplay, Canonical: canonicalDisplay}
	}
	return Result{Verdict: VerdictWrong, Answer: answerDisplay, Canonical: canonicalDisplay}
}

// withinEditThreshold reports whether a and b are within the near-miss
// edit distance: 2 for targets up to 20 normalized characters, 3 beyond.
func withinEditThreshold(a, b string) bool {
	limit := 2
	if max(len(a), len(b)) > 20 {
		limit = 3
	}
	return levenshtein.Distance(a, b, nil) <= limit
}

// EffectiveCorrect reports whether a verdict counts as correct for
// scheduling. An explanation-service flip always counts; almost counts
// under easy and normal but not strict. The stored verdict is never edited.
func EffectiveCorrect(v Verdict, flipped bool, mode Strictness) bool {
	if flipped {
		return true
	}
	if mode == StrictnessEasy || mode == StrictnessNormal {
		return v == VerdictCorrect || v == VerdictAlmost
	}
	return v == VerdictCorrect
}
