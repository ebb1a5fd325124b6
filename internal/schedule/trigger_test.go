package schedule

import (
	"reflect"
	"testing"
	"time"
)

var triggerNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestEnsureDetours_CreatesMissingUnits(t *testing.T) {
	plan := EnsureDetours(nil, 7, []string{"unit_3", "unit_1", "unit_3"}, []string{"unit_1_A"}, triggerNow)

	if len(plan.Create) != 2 {
		t.Fatalf("created %d, want 2 (deduplicated, both units)", len(plan.Create))
	}
	// Units come out sorted.
	if plan.Create[0].UnitKey != "unit_1" || plan.Create[1].UnitKey != "unit_3" {
		t.Errorf("units = %s, %s", plan.Create[0].UnitKey, plan.Create[1].UnitKey)
	}
	for _, d := range plan.Create {
		if d.Kind != KindDetour || !d.IsActive || !d.DueAt.Equal(triggerNow) {
			t.Errorf("due item %+v, want active detour due now", d)
		}
		if d.Progress != InitialProgress() {
			t.Errorf("progress = %+v, want initial", d.Progress)
		}
	}
	// unit_1 gets its own key; unit_3 has no unit-specific keys, so it keeps
	// the full set.
	if !reflect.DeepEqual(plan.Create[0].CauseRuleKeys, []string{"unit_1_A"}) {
		t.Errorf("unit_1 keys = %v", plan.Create[0].CauseRuleKeys)
	}
	if !reflect.DeepEqual(plan.Create[1].CauseRuleKeys, []string{"unit_1_A"}) {
		t.Errorf("unit_3 keys = %v, want full fallback set", plan.Create[1].CauseRuleKeys)
	}
}

func TestEnsureDetours_IdempotentAcrossCalls(t *testing.T) {
	first := EnsureDetours(nil, 7, []string{"unit_2"}, []string{"unit_2_A"}, triggerNow)
	if len(first.Create) != 1 {
		t.Fatalf("created %d, want 1", len(first.Create))
	}
	active := first.Create[0]
	active.ID = 11

	second := EnsureDetours([]DueItem{active}, 7, []string{"unit_2"}, []string{"unit_2_B"}, triggerNow)
	if len(second.Create) != 0 {
		t.Fatalf("second call created %d new items, want 0", len(second.Create))
	}
	if len(second.Escalate) != 1 {
		t.Fatalf("expected one in-place update")
	}
	got := second.Escalate[0].CauseRuleKeys
	want := []string{"unit_2_A", "unit_2_B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("cause keys = %v, want deduplicated union %v", got, want)
	}
}

func TestEnsureDetours_MergesIntoExistingDetourAndPullsDueAt(t *testing.T) {
	later := triggerNow.Add(24 * time.Hour)
	existing := DueItem{
		ID: 5, LearnerID: 7, Kind: KindDetour, UnitKey: "unit_2",
		DueAt: later, IsActive: true, CauseRuleKeys: []string{"unit_2_A"},
		Progress: Progress{ExerciseIndex: 2, ItemInExercise: 1},
	}

	plan := EnsureDetours([]DueItem{existing}, 7, []string{"unit_2"}, []string{"unit_2_B"}, triggerNow)
	if len(plan.Create) != 0 || len(plan.Escalate) != 1 {
		t.Fatalf("plan = %+v, want single escalation", plan)
	}
	up := plan.Escalate[0]
	if !up.DueAt.Equal(triggerNow) {
		t.Errorf("due at = %v, want pulled to now", up.DueAt)
	}
	// Progress on an existing detour is preserved.
	if up.Progress.ExerciseIndex != 2 {
		t.Errorf("progress reset on plain merge: %+v", up.Progress)
	}
}

func TestEnsureDetours_EscalatesRevisitInPlace(t *testing.T) {
	existing := DueItem{
		ID: 9, LearnerID: 7, Kind: KindRevisit, UnitKey: "unit_4",
		DueAt: triggerNow.Add(48 * time.Hour), IsActive: true,
		Progress:      Progress{ExerciseIndex: 2, ItemInExercise: 2, CorrectInExercise: 1},
		CauseRuleKeys: []string{"unit_4_A"},
	}

	plan := EnsureDetours([]DueItem{existing}, 7, []string{"unit_4"}, []string{"unit_4_C"}, triggerNow)
	if len(plan.Create) != 0 {
		t.Fatal("escalation must not create a parallel item")
	}
	up := plan.Escalate[0]
	if up.ID != 9 {
		t.Errorf("escalation must keep the row identity, got id %d", up.ID)
	}
	if up.Kind != KindDetour {
		t.Errorf("kind = %s, want detour", up.Kind)
	}
	if up.Progress != InitialProgress() {
		t.Errorf("progress = %+v, want reset", up.Progress)
	}
	if !up.DueAt.Equal(triggerNow) {
		t.Errorf("due at = %v, want now", up.DueAt)
	}
	if !reflect.DeepEqual(up.CauseRuleKeys, []string{"unit_4_A", "unit_4_C"}) {
		t.Errorf("cause keys = %v", up.CauseRuleKeys)
	}
}

func TestFilterCauseKeys(t *testing.T) {
	keys := []string{"unit_1_A", "unit_12_B", "grammar_misc"}
	if got := FilterCauseKeys("unit_1", keys); !reflect.DeepEqual(got, []string{"unit_1_A"}) {
		t.Errorf("unit_1 = %v", got)
	}
	// unit_1 prefix must not leak into unit_12.
	if got := FilterCauseKeys("unit_12", keys); !reflect.DeepEqual(got, []string{"unit_12_B"}) {
		t.Errorf("unit_12 = %v", got)
	}
	if got := FilterCauseKeys("unit_99", keys); !reflect.DeepEqual(got, keys) {
		t.Errorf("no-match fallback = %v, want full set", got)
	}
}

func TestMergeCauseKeys(t *testing.T) {
	got := MergeCauseKeys([]string{"a", "b"}, []string{"b", "c", "", "a"})
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("merged = %v", got)
	}
}
