package schedule

import (
	"testing"
	"time"
)

func TestAdvance_StreakCompletesExercise(t *testing.T) {
	p := InitialProgress()

	p, done := Advance(p, 2, 4, true)
	if done {
		t.Fatal("unexpected completion after one correct")
	}
	if p.ExerciseIndex != 1 || p.ItemInExercise != 2 || p.CorrectInExercise != 1 {
		t.Fatalf("progress = %+v", p)
	}

	p, done = Advance(p, 2, 4, true)
	if done {
		t.Fatal("unexpected completion")
	}
	if p.ExerciseIndex != 2 || p.ItemInExercise != 1 || p.CorrectInExercise != 0 {
		t.Fatalf("progress after exercise complete = %+v", p)
	}
}

func TestAdvance_MissRestartsExercise(t *testing.T) {
	p := Progress{ExerciseIndex: 2, ItemInExercise: 2, CorrectInExercise: 1}
	p, done := Advance(p, 2, 4, false)
	if done {
		t.Fatal("a miss must not complete the due item")
	}
	if p.ExerciseIndex != 2 {
		t.Errorf("exercise index advanced on miss: %d", p.ExerciseIndex)
	}
	if p.ItemInExercise != 1 || p.CorrectInExercise != 0 {
		t.Errorf("counters not reset: %+v", p)
	}
}

func TestAdvance_SingleItemExercise(t *testing.T) {
	// required streak caps at the item count.
	p := InitialProgress()
	p, done := Advance(p, 1, 1, true)
	if !done {
		t.Fatal("single-exercise selection with single item should complete")
	}
	if p.ExerciseIndex != 2 {
		t.Errorf("exercise index = %d, want 2", p.ExerciseIndex)
	}
}

func TestAdvance_ItemWrapAdvancesExercise(t *testing.T) {
	// 3-item exercise, one correct then item pointer runs past the end.
	p := Progress{ExerciseIndex: 1, ItemInExercise: 3, CorrectInExercise: 0}
	p, done := Advance(p, 3, 4, true)
	if done {
		t.Fatal("unexpected completion")
	}
	if p.ExerciseIndex != 2 || p.ItemInExercise != 1 || p.CorrectInExercise != 0 {
		t.Fatalf("progress = %+v, want wrap to next exercise", p)
	}
}

func TestAdvance_NoContentCompletesImmediately(t *testing.T) {
	_, done := Advance(InitialProgress(), 0, 0, false)
	if !done {
		t.Fatal("empty selection must complete the due item")
	}
}

func TestAdvance_DetourCompletesAfterEightCorrect(t *testing.T) {
	// 4 selected exercises of 2 items each, answered correctly throughout:
	// exactly 8 correct answers finish the detour.
	p := InitialProgress()
	done := false
	answers := 0
	for !done {
		p, done = Advance(p, 2, 4, true)
		answers++
		if answers > 16 {
			t.Fatal("runaway loop")
		}
	}
	if answers != 8 {
		t.Errorf("completed after %d answers, want 8", answers)
	}
}

func TestFollowUp_Ladder(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	detour := DueItem{
		LearnerID:     7,
		Kind:          KindDetour,
		UnitKey:       "unit_12",
		IsActive:      true,
		CauseRuleKeys: []string{"unit_12_B"},
	}

	revisit, ok := FollowUp(detour, now)
	if !ok {
		t.Fatal("detour must produce a revisit")
	}
	if revisit.Kind != KindRevisit {
		t.Errorf("kind = %s, want revisit", revisit.Kind)
	}
	if !revisit.DueAt.Equal(now.Add(RevisitDelay)) {
		t.Errorf("due at = %v, want +48h", revisit.DueAt)
	}
	if revisit.Progress != InitialProgress() {
		t.Errorf("progress = %+v, want initial", revisit.Progress)
	}
	if len(revisit.CauseRuleKeys) != 1 || revisit.CauseRuleKeys[0] != "unit_12_B" {
		t.Errorf("cause keys = %v, want carried forward", revisit.CauseRuleKeys)
	}

	check, ok := FollowUp(revisit, now)
	if !ok || check.Kind != KindCheck {
		t.Fatalf("revisit must produce a check, got %+v ok=%v", check, ok)
	}
	if !check.DueAt.Equal(now.Add(CheckDelay)) {
		t.Errorf("due at = %v, want +7d", check.DueAt)
	}

	if _, ok := FollowUp(check, now); ok {
		t.Error("check must have no successor")
	}
}
