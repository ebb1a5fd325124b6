package schedule

import (
	"sort"
	"time"
)

// DetourPlan is the outcome of EnsureDetours: due items to insert and
// existing ones to update in place. The caller persists both.
type DetourPlan struct {
	Create   []DueItem
	Escalate []DueItem
}

// Empty reports whether the plan changes nothing.
func (p DetourPlan) Empty() bool {
	return len(p.Create) == 0 && len(p.Escalate) == 0
}

// EnsureDetours decides which detours a failing answer requires. existing
// must hold the learner's active due items for the affected units (any
// kind). For each unit:
//
//   - no active item: a new detour due now is created, with causeRuleKeys
//     filtered to the unit.
//   - active detour: cause keys merge into it and its due time is pulled
//     to now if it was scheduled later.
//   - active revisit or check: it is escalated in place — converted to a
//     detour with progress reset and due now. Escalating rather than
//     inserting keeps the one-item-per-unit invariant.
//
// Calling this twice with the same inputs yields an idempotent result: the
// second call only re-emits unchanged escalations/merges, never duplicates.
func EnsureDetours(existing []DueItem, learnerID int, unitKeys, causeRuleKeys []string, now time.Time) DetourPlan {
	byUnit := make(map[string]DueItem, len(existing))
	for _, d := range existing {
		if d.IsActive && d.LearnerID == learnerID {
			byUnit[d.UnitKey] = d
		}
	}

	units := uniqueSorted(unitKeys)

	var plan DetourPlan
	for _, unit := range units {
		keys := FilterCauseKeys(unit, causeRuleKeys)

		current, ok := byUnit[unit]
		if !ok {
			plan.Create = append(plan.Create, DueItem{
				LearnerID:     learnerID,
				Kind:          KindDetour,
				UnitKey:       unit,
				DueAt:         now,
				Progress:      InitialProgress(),
				BatchNum:      1,
				IsActive:      true,
				CauseRuleKeys: keys,
			})
			continue
		}

		if current.Kind == KindDetour {
			current.CauseRuleKeys = MergeCauseKeys(current.CauseRuleKeys, keys)
			if current.DueAt.After(now) {
				current.DueAt = now
			}
			plan.Escalate = append(plan.Escalate, current)
			continue
		}

		// Revisit/check escalate in place.
		current.Kind = KindDetour
		current.Progress = InitialProgress()
		current.DueAt = now
		current.CauseRuleKeys = MergeCauseKeys(current.CauseRuleKeys, keys)
		plan.Escalate = append(plan.Escalate, current)
	}
	return plan
}

func uniqueSorted(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	var out []string
	for _, k := range keys {
		if k != "" && !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
