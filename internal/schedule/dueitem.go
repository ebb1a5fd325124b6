// Package schedule implements the remediation pipeline: due-item state,
// the answer-driven transition function, and the detour trigger. Everything
// here is pure; callers persist the returned values.
package schedule

import (
	"strings"
	"time"
)

// Kind is the remediation stage of a due item. The three kinds form an
// escalation ladder: detour (immediate practice), revisit (short-term
// follow-up), check (long-term probe).
type Kind string

const (
	KindDetour  Kind = "detour"
	KindRevisit Kind = "revisit"
	KindCheck   Kind = "check"
)

// Valid reports whether k is a known due kind.
func (k Kind) Valid() bool {
	return k == KindDetour || k == KindRevisit || k == KindCheck
}

// Follow-up delays after completing a stage.
const (
	RevisitDelay = 48 * time.Hour
	CheckDelay   = 7 * 24 * time.Hour
)

// Progress tracks position inside a due item. ExerciseIndex is the 1-based
// position within the due item's selected exercises, not the unit's
// absolute exercise numbering.
type Progress struct {
	ExerciseIndex     int
	ItemInExercise    int
	CorrectInExercise int
}

// InitialProgress is where every due item starts.
func InitialProgress() Progress {
	return Progress{ExerciseIndex: 1, ItemInExercise: 1, CorrectInExercise: 0}
}

// DueItem is one learner's outstanding remediation obligation for a unit.
// At most one of detour/revisit/check is active per (learner, unit).
type DueItem struct {
	ID            int
	LearnerID     int
	Kind          Kind
	UnitKey       string
	DueAt         time.Time
	Progress      Progress
	BatchNum      int
	IsActive      bool
	CauseRuleKeys []string
}

// FollowUp synthesizes the successor for a completed due item: a revisit
// two days out after a detour, a check seven days out after a revisit.
// A check has no successor here; its failure path re-escalates through
// EnsureDetours instead.
func FollowUp(d DueItem, now time.Time) (DueItem, bool) {
	var kind Kind
	var delay time.Duration
	switch d.Kind {
	case KindDetour:
		kind, delay = KindRevisit, RevisitDelay
	case KindRevisit:
		kind, delay = KindCheck, CheckDelay
	default:
		return DueItem{}, false
	}
	return DueItem{
		LearnerID:     d.LearnerID,
		Kind:          kind,
		UnitKey:       d.UnitKey,
		DueAt:         now.Add(delay),
		Progress:      InitialProgress(),
		BatchNum:      1,
		IsActive:      true,
		CauseRuleKeys: append([]string(nil), d.CauseRuleKeys...),
	}, true
}

// FilterCauseKeys keeps the rule keys that belong to a unit (the key equals
// the unit key or carries it as a prefix, e.g. "unit_12_B" for "unit_12").
// When no key is unit-specific the full set is kept, so a detour never
// loses its cause entirely.
func FilterCauseKeys(unitKey string, keys []string) []string {
	var out []string
	for _, k := range keys {
		if k == unitKey || strings.HasPrefix(k, unitKey+"_") {
			out = append(out, k)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), keys...)
	}
	return out
}

// MergeCauseKeys unions two cause-key sets, deduplicated, preserving the
// order keys were first seen.
func MergeCauseKeys(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing)+len(incoming))
	var out []string
	for _, k := range existing {
		if k != "" && !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	for _, k := range incoming {
		if k != "" && !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
