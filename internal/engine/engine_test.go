package engine

import (
	"context"
	"testing"
	"time"

	"github.com/verba-app/verba/internal/content"
	"github.com/verba-app/verba/internal/grader"
	"github.com/verba-app/verba/internal/schedule"
	"github.com/verba-app/verba/internal/store"
	"github.com/verba-app/verba/internal/textnorm"
)

// ---- in-memory fakes ----

type fakeLearners struct {
	learner store.Learner
	state   store.LearnerState
}

func (f *fakeLearners) GetOrCreate(_ context.Context, name string) (*store.Learner, error) {
	l := f.learner
	return &l, nil
}

func (f *fakeLearners) Get(_ context.Context, learnerID int) (*store.Learner, error) {
	l := f.learner
	return &l, nil
}

func (f *fakeLearners) SetStrictness(_ context.Context, _ int, s string) error {
	f.learner.Strictness = s
	return nil
}

func (f *fakeLearners) State(_ context.Context, learnerID int) (*store.LearnerState, error) {
	st := f.state
	return &st, nil
}

func (f *fakeLearners) UpdateState(_ context.Context, st *store.LearnerState) error {
	f.state = *st
	return nil
}

func (f *fakeLearners) Reset(_ context.Context, _ int) error { return nil }

type fakeContent struct {
	store.ContentRepo
	exercises []content.Exercise
	placement []content.PlacementItem
	rules     []content.Rule
}

func (f *fakeContent) ExercisesByUnit(_ context.Context, unitKey string) ([]content.Exercise, error) {
	var out []content.Exercise
	for _, ex := range f.exercises {
		if ex.UnitKey == unitKey {
			out = append(out, ex)
		}
	}
	return out, nil
}

func (f *fakeContent) PlacementItems(_ context.Context) ([]content.PlacementItem, error) {
	return f.placement, nil
}

func (f *fakeContent) RulesByUnit(_ context.Context, unitKey string) ([]content.Rule, error) {
	return f.rules, nil
}

type fakeDue struct {
	items  map[int]*schedule.DueItem
	nextID int
}

func newFakeDue() *fakeDue {
	return &fakeDue{items: make(map[int]*schedule.DueItem), nextID: 1}
}

func (f *fakeDue) Create(_ context.Context, d *schedule.DueItem) error {
	d.ID = f.nextID
	f.nextID++
	cp := *d
	f.items[d.ID] = &cp
	return nil
}

func (f *fakeDue) Update(_ context.Context, d *schedule.DueItem) error {
	cp := *d
	f.items[d.ID] = &cp
	return nil
}

func (f *fakeDue) Deactivate(_ context.Context, id int) error {
	f.items[id].IsActive = false
	return nil
}

func (f *fakeDue) Active(_ context.Context, learnerID int) ([]schedule.DueItem, error) {
	var out []schedule.DueItem
	for _, d := range f.items {
		if d.LearnerID == learnerID && d.IsActive {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDue) ActiveForUnits(_ context.Context, learnerID int, unitKeys []string) ([]schedule.DueItem, error) {
	keys := make(map[string]bool)
	for _, k := range unitKeys {
		keys[k] = true
	}
	var out []schedule.DueItem
	for _, d := range f.items {
		if d.LearnerID == learnerID && d.IsActive && keys[d.UnitKey] {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDue) DueNow(_ context.Context, learnerID int, now time.Time) ([]schedule.DueItem, error) {
	var out []schedule.DueItem
	for _, d := range f.items {
		if d.LearnerID == learnerID && d.IsActive && !d.DueAt.After(now) {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDue) NextDueAt(_ context.Context, learnerID int, now time.Time) (time.Time, bool, error) {
	var best time.Time
	found := false
	for _, d := range f.items {
		if d.LearnerID == learnerID && d.IsActive && d.DueAt.After(now) {
			if !found || d.DueAt.Before(best) {
				best = d.DueAt
				found = true
			}
		}
	}
	return best, found, nil
}

type fakeAttempts struct {
	store.AttemptRepo
	appended []store.AttemptData
	flipped  []int
}

func (f *fakeAttempts) Append(_ context.Context, a store.AttemptData) (int, error) {
	f.appended = append(f.appended, a)
	return len(f.appended), nil
}

func (f *fakeAttempts) MarkFlipped(_ context.Context, id int) error {
	f.flipped = append(f.flipped, id)
	return nil
}

// ---- fixtures ----

const learnerID = 1

func freetextExercise(unit string, index int) content.Exercise {
	return content.Exercise{
		UnitKey:       unit,
		ExerciseIndex: index,
		Type:          grader.ItemFreeText,
		Instruction:   "Make the sentence negative.",
		Items: []content.Item{
			{Prompt: "She works here.", Canonical: "She doesn't work here.", AcceptedVariants: []string{"She does not work here."}},
			{Prompt: "They live in Kyiv.", Canonical: "They don't live in Kyiv.", AcceptedVariants: []string{"They do not live in Kyiv."}},
			{Prompt: "He plays tennis.", Canonical: "He doesn't play tennis.", AcceptedVariants: []string{"He does not play tennis."}},
		},
	}
}

func testEngine(t *testing.T, cnt *fakeContent, due *fakeDue, now time.Time) (*Engine, *fakeLearners, *fakeAttempts) {
	t.Helper()
	learners := &fakeLearners{
		learner: store.Learner{ID: learnerID, Name: "test", Strictness: "normal"},
		state:   store.LearnerState{LearnerID: learnerID, PlacementDone: true},
	}
	attempts := &fakeAttempts{}
	e := New(Repos{
		Learners: learners,
		Content:  cnt,
		Due:      due,
		Attempts: attempts,
	}, nil, WithClock(func() time.Time { return now }))
	return e, learners, attempts
}

func answerCurrent(t *testing.T, e *Engine, answer string, flipped bool) *Feedback {
	t.Helper()
	ctx := context.Background()
	fb, err := e.SubmitAnswer(ctx, learnerID, answer)
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if err := e.Advance(ctx, learnerID, flipped); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	return fb
}

// ---- tests ----

func TestDetourCompletesIntoRevisit(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cnt := &fakeContent{exercises: []content.Exercise{freetextExercise("present_simple_1", 1)}}
	due := newFakeDue()
	due.Create(context.Background(), &schedule.DueItem{
		LearnerID: learnerID,
		Kind:      schedule.KindDetour,
		UnitKey:   "present_simple_1",
		DueAt:     now,
		Progress:  schedule.InitialProgress(),
		IsActive:  true,
	})
	e, _, _ := testEngine(t, cnt, due, now)
	ctx := context.Background()

	// One exercise in the unit means the selection repeats it; two
	// shown items per step need two correct answers to advance, and
	// the detour spans up to four exercise slots.
	for i := 0; i < 20; i++ {
		q, done, err := e.CurrentItem(ctx, learnerID)
		if err != nil {
			t.Fatalf("CurrentItem: %v", err)
		}
		if q == nil {
			if done == nil {
				t.Fatal("expected question or done")
			}
			break
		}
		if q.Source != SourceDue {
			t.Fatalf("expected due question, got %s", q.Source)
		}
		// Answer with the canonical form.
		item := q.Exercise.Items[q.RealItemIndex-1]
		fb := answerCurrent(t, e, item.Canonical, false)
		if !fb.EffectiveCorrect {
			t.Fatalf("canonical answer graded %s", fb.Verdict)
		}
	}

	var revisit *schedule.DueItem
	for _, d := range due.items {
		if d.Kind == schedule.KindRevisit && d.IsActive {
			revisit = d
		}
		if d.Kind == schedule.KindDetour && d.IsActive {
			t.Fatal("detour should be complete")
		}
	}
	if revisit == nil {
		t.Fatal("expected a revisit follow-up")
	}
	if got := revisit.DueAt.Sub(now); got != schedule.RevisitDelay {
		t.Fatalf("revisit delay = %v, want %v", got, schedule.RevisitDelay)
	}
}

func TestWrongAnswerResetsProgress(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cnt := &fakeContent{exercises: []content.Exercise{freetextExercise("present_simple_1", 1)}}
	due := newFakeDue()
	due.Create(context.Background(), &schedule.DueItem{
		LearnerID: learnerID,
		Kind:      schedule.KindDetour,
		UnitKey:   "present_simple_1",
		DueAt:     now,
		Progress:  schedule.Progress{ExerciseIndex: 1, ItemInExercise: 2, CorrectInExercise: 1},
		IsActive:  true,
	})
	e, _, _ := testEngine(t, cnt, due, now)
	ctx := context.Background()

	if _, _, err := e.CurrentItem(ctx, learnerID); err != nil {
		t.Fatalf("CurrentItem: %v", err)
	}
	fb := answerCurrent(t, e, "completely wrong", false)
	if fb.EffectiveCorrect {
		t.Fatal("expected a wrong answer")
	}

	d := due.items[1]
	if d.Progress.ItemInExercise != 1 || d.Progress.CorrectInExercise != 0 {
		t.Fatalf("progress not reset: %+v", d.Progress)
	}
	if !d.IsActive {
		t.Fatal("due item should stay active")
	}
}

func TestFailedCheckEscalatesInPlace(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cnt := &fakeContent{exercises: []content.Exercise{freetextExercise("present_simple_1", 1)}}
	due := newFakeDue()
	due.Create(context.Background(), &schedule.DueItem{
		LearnerID: learnerID,
		Kind:      schedule.KindCheck,
		UnitKey:   "present_simple_1",
		DueAt:     now,
		Progress:  schedule.InitialProgress(),
		IsActive:  true,
	})
	e, _, _ := testEngine(t, cnt, due, now)
	ctx := context.Background()

	if _, _, err := e.CurrentItem(ctx, learnerID); err != nil {
		t.Fatalf("CurrentItem: %v", err)
	}
	answerCurrent(t, e, "completely wrong", false)

	if len(due.items) != 1 {
		t.Fatalf("escalation must not insert a second row, have %d", len(due.items))
	}
	d := due.items[1]
	if d.Kind != schedule.KindDetour {
		t.Fatalf("check should have escalated to detour, got %s", d.Kind)
	}
	if !d.IsActive || !d.DueAt.Equal(now) {
		t.Fatalf("escalated detour should be active and due now: %+v", d)
	}
}

func TestPassedCheckCompletesLadder(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cnt := &fakeContent{exercises: []content.Exercise{freetextExercise("present_simple_1", 1)}}
	due := newFakeDue()
	due.Create(context.Background(), &schedule.DueItem{
		LearnerID: learnerID,
		Kind:      schedule.KindCheck,
		UnitKey:   "present_simple_1",
		DueAt:     now,
		Progress:  schedule.InitialProgress(),
		IsActive:  true,
	})
	e, _, _ := testEngine(t, cnt, due, now)
	ctx := context.Background()

	q, _, err := e.CurrentItem(ctx, learnerID)
	if err != nil {
		t.Fatalf("CurrentItem: %v", err)
	}
	item := q.Exercise.Items[q.RealItemIndex-1]
	answerCurrent(t, e, item.Canonical, false)

	if len(due.items) != 1 || due.items[1].IsActive {
		t.Fatal("passed check should deactivate with no follow-up")
	}
}

func TestRevisitBeforeDetour(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cnt := &fakeContent{exercises: []content.Exercise{
		freetextExercise("unit_a", 1),
		freetextExercise("unit_b", 1),
	}}
	due := newFakeDue()
	ctx := context.Background()
	due.Create(ctx, &schedule.DueItem{
		LearnerID: learnerID, Kind: schedule.KindDetour, UnitKey: "unit_a",
		DueAt: now.Add(-2 * time.Hour), Progress: schedule.InitialProgress(), IsActive: true,
	})
	due.Create(ctx, &schedule.DueItem{
		LearnerID: learnerID, Kind: schedule.KindRevisit, UnitKey: "unit_b",
		DueAt: now.Add(-time.Hour), Progress: schedule.InitialProgress(), IsActive: true,
	})
	e, _, _ := testEngine(t, cnt, due, now)

	q, _, err := e.CurrentItem(ctx, learnerID)
	if err != nil {
		t.Fatalf("CurrentItem: %v", err)
	}
	if q.Due.Kind != schedule.KindRevisit {
		t.Fatalf("revisit should be asked before the older detour, got %s", q.Due.Kind)
	}
}

func TestMissedPlacementSchedulesDetour(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cnt := &fakeContent{
		exercises: []content.Exercise{freetextExercise("present_simple_1", 1)},
		placement: []content.PlacementItem{
			{ID: 1, OrderIndex: 0, UnitKey: "present_simple_1", Prompt: "She ___ (work) here.",
				Type: grader.ItemFreeText, Canonical: "works", StudyUnits: []string{"present_simple_1"}},
			{ID: 2, OrderIndex: 1, UnitKey: "past_simple_1", Prompt: "She ___ (work) here yesterday.",
				Type: grader.ItemFreeText, Canonical: "worked"},
		},
	}
	due := newFakeDue()
	e, learners, _ := testEngine(t, cnt, due, now)
	learners.state.PlacementDone = false
	ctx := context.Background()

	q, _, err := e.CurrentItem(ctx, learnerID)
	if err != nil {
		t.Fatalf("CurrentItem: %v", err)
	}
	if q.Source != SourcePlacement || q.Placement.ID != 1 {
		t.Fatalf("expected first placement item, got %+v", q)
	}

	answerCurrent(t, e, "is working", false) // wrong tense

	var detour *schedule.DueItem
	for _, d := range due.items {
		if d.Kind == schedule.KindDetour && d.IsActive {
			detour = d
		}
	}
	if detour == nil || detour.UnitKey != "present_simple_1" {
		t.Fatalf("missed placement item should schedule a detour for its study unit, got %+v", detour)
	}

	// The detour is due now, so it runs before the rest of placement.
	q, _, err = e.CurrentItem(ctx, learnerID)
	if err != nil {
		t.Fatalf("CurrentItem: %v", err)
	}
	if q.Source != SourceDue || q.Due.Kind != schedule.KindDetour {
		t.Fatalf("detour should preempt placement, got %+v", q.Source)
	}
}

func TestPlacementDoesNotReaskMissedItem(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cnt := &fakeContent{
		placement: []content.PlacementItem{
			{ID: 1, OrderIndex: 0, Prompt: "p1", Type: grader.ItemFreeText, Canonical: "a1"},
			{ID: 2, OrderIndex: 1, Prompt: "p2", Type: grader.ItemFreeText, Canonical: "a2"},
		},
	}
	due := newFakeDue()
	e, learners, _ := testEngine(t, cnt, due, now)
	learners.state.PlacementDone = false
	ctx := context.Background()

	q, _, _ := e.CurrentItem(ctx, learnerID)
	if q.Placement.ID != 1 {
		t.Fatalf("expected item 1, got %d", q.Placement.ID)
	}
	answerCurrent(t, e, "wrong", false)

	// No detour was scheduled (no study units, no unit key), so the
	// next question is the second placement item, not the first again.
	q, _, _ = e.CurrentItem(ctx, learnerID)
	if q == nil || q.Placement == nil || q.Placement.ID != 2 {
		t.Fatalf("expected item 2, got %+v", q)
	}
}

func TestMissingContentCompletesDue(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cnt := &fakeContent{} // no exercises at all
	due := newFakeDue()
	due.Create(context.Background(), &schedule.DueItem{
		LearnerID: learnerID,
		Kind:      schedule.KindDetour,
		UnitKey:   "empty_unit",
		DueAt:     now,
		Progress:  schedule.InitialProgress(),
		IsActive:  true,
	})
	e, _, _ := testEngine(t, cnt, due, now)
	ctx := context.Background()

	q, done, err := e.CurrentItem(ctx, learnerID)
	if err != nil {
		t.Fatalf("CurrentItem: %v", err)
	}
	if q != nil {
		t.Fatalf("no content should mean no question, got %+v", q)
	}
	if done == nil {
		t.Fatal("expected done marker")
	}
	// The detour completed and a revisit was scheduled for later.
	if done.NextDueAt.IsZero() {
		t.Fatal("follow-up revisit should be scheduled")
	}
	if due.items[1].IsActive {
		t.Fatal("content-less detour should be deactivated")
	}
}

func TestAttemptCarriesAuditFields(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cnt := &fakeContent{exercises: []content.Exercise{freetextExercise("present_simple_1", 1)}}
	due := newFakeDue()
	due.Create(context.Background(), &schedule.DueItem{
		LearnerID:     learnerID,
		Kind:          schedule.KindDetour,
		UnitKey:       "present_simple_1",
		DueAt:         now,
		Progress:      schedule.InitialProgress(),
		IsActive:      true,
		CauseRuleKeys: []string{"present_simple_negation"},
	})
	e, _, attempts := testEngine(t, cnt, due, now)
	ctx := context.Background()

	q, _, err := e.CurrentItem(ctx, learnerID)
	if err != nil {
		t.Fatalf("CurrentItem: %v", err)
	}
	item := q.Exercise.Items[q.RealItemIndex-1]

	raw := "  she   does not work here!! "
	if _, err := e.SubmitAnswer(ctx, learnerID, raw); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	if len(attempts.appended) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(attempts.appended))
	}
	att := attempts.appended[0]
	if att.Answer != raw {
		t.Fatalf("raw answer must be stored untouched, got %q", att.Answer)
	}
	if want := textnorm.Display(raw); att.AnswerNorm != want {
		t.Fatalf("AnswerNorm = %q, want %q", att.AnswerNorm, want)
	}
	if want := textnorm.Display(item.Canonical); att.Canonical != want {
		t.Fatalf("Canonical = %q, want %q", att.Canonical, want)
	}
	if len(att.RuleKeys) != 1 || att.RuleKeys[0] != "present_simple_negation" {
		t.Fatalf("RuleKeys = %v, want the due item's cause keys", att.RuleKeys)
	}
}

func TestFlipCountsAsCorrect(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cnt := &fakeContent{exercises: []content.Exercise{freetextExercise("present_simple_1", 1)}}
	due := newFakeDue()
	due.Create(context.Background(), &schedule.DueItem{
		LearnerID: learnerID,
		Kind:      schedule.KindDetour,
		UnitKey:   "present_simple_1",
		DueAt:     now,
		Progress:  schedule.InitialProgress(),
		IsActive:  true,
	})
	e, _, _ := testEngine(t, cnt, due, now)
	ctx := context.Background()

	if _, _, err := e.CurrentItem(ctx, learnerID); err != nil {
		t.Fatalf("CurrentItem: %v", err)
	}
	fb := answerCurrent(t, e, "completely wrong", true) // explanation flipped it
	if fb.EffectiveCorrect {
		t.Fatal("feedback reflects grading before the flip")
	}

	d := due.items[1]
	if d.Progress.CorrectInExercise != 1 {
		t.Fatalf("flipped answer should count toward the streak: %+v", d.Progress)
	}
}
