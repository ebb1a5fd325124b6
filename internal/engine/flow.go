package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/verba-app/verba/internal/content"
	"github.com/verba-app/verba/internal/grader"
	"github.com/verba-app/verba/internal/schedule"
	"github.com/verba-app/verba/internal/selector"
	"github.com/verba-app/verba/internal/store"
)

// boundedGenIndex caps how deep generation fills a unit with no
// authored content.
const boundedGenIndex = 2

// ErrNothingPending is returned when SubmitAnswer or Advance runs
// without a question on the table.
var ErrNothingPending = errors.New("no question pending")

// inventory builds the selector's unit -> exercise indices lookup for
// one unit.
func (e *Engine) inventory(ctx context.Context, unitKey string) (*selector.Inventory, error) {
	exercises, err := e.repos.Content.ExercisesByUnit(ctx, unitKey)
	if err != nil {
		return nil, err
	}
	indices := make([]int, 0, len(exercises))
	for _, ex := range exercises {
		indices = append(indices, ex.ExerciseIndex)
	}
	return selector.NewInventory(map[string][]int{unitKey: indices}), nil
}

// buildDueQuestion resolves a due item to a renderable question. A nil
// question (with nil error) means the unit has no materializable
// content and the due item should complete without an exercise.
func (e *Engine) buildDueQuestion(ctx context.Context, due *schedule.DueItem) (*Question, error) {
	inv, err := e.inventory(ctx, due.UnitKey)
	if err != nil {
		return nil, err
	}
	selected := selector.Select(inv, due.ID, due.UnitKey, due.Kind)

	var ex *content.Exercise
	if len(selected) == 0 {
		// Empty unit: generate into a bounded slot.
		if e.gen == nil {
			return nil, nil
		}
		idx := due.Progress.ExerciseIndex
		if idx < 1 {
			idx = 1
		}
		if idx > boundedGenIndex {
			idx = boundedGenIndex
		}
		ex, err = e.gen.EnsureExercise(ctx, due.UnitKey, idx)
		if err != nil || ex == nil {
			return nil, err
		}
	} else {
		pos := due.Progress.ExerciseIndex
		if pos < 1 || pos > len(selected) {
			// Out-of-range position means stale progress; restart the
			// selection rather than dropping the unit.
			pos = 1
			due.Progress.ExerciseIndex = 1
			if err := e.repos.Due.Update(ctx, due); err != nil {
				return nil, err
			}
		}
		ex, err = e.exerciseAt(ctx, due.UnitKey, selected[pos-1])
		if err != nil {
			return nil, err
		}
		if ex == nil {
			return nil, nil
		}
	}

	capped := due.Kind != schedule.KindCheck
	shown := content.ShownItems(ex, due.CauseRuleKeys, capped)
	if len(shown) == 0 {
		return nil, nil
	}

	shownIdx := due.Progress.ItemInExercise
	if shownIdx < 1 || shownIdx > len(shown) {
		shownIdx = 1
		if due.Progress.ItemInExercise != 1 {
			due.Progress.ItemInExercise = 1
			if err := e.repos.Due.Update(ctx, due); err != nil {
				return nil, err
			}
		}
	}
	item := shown[shownIdx-1]

	ruleKeys := item.RuleKeys
	if len(ruleKeys) == 0 {
		ruleKeys = due.CauseRuleKeys
	}

	return &Question{
		Source:        SourceDue,
		Due:           *due,
		Exercise:      ex,
		RealItemIndex: realItemIndex(ex, item),
		ShownIndex:    shownIdx,
		ShownTotal:    len(shown),
		Instruction:   ex.Instruction,
		Prompt:        item.Prompt,
		Options:       item.Options,
		IsChoice:      content.IsChoice(ex.Type),
		MultiSelect:   ex.Type == grader.ItemMultiSelect,
		ShowRuleFirst: due.Kind == schedule.KindDetour && due.Progress == schedule.InitialProgress(),
		RuleKeys:      ruleKeys,
	}, nil
}

// exerciseAt loads the exercise with the given real index, or nil when
// content changed underneath the selection.
func (e *Engine) exerciseAt(ctx context.Context, unitKey string, realIndex int) (*content.Exercise, error) {
	exercises, err := e.repos.Content.ExercisesByUnit(ctx, unitKey)
	if err != nil {
		return nil, err
	}
	for i := range exercises {
		if exercises[i].ExerciseIndex == realIndex {
			return &exercises[i], nil
		}
	}
	return nil, nil
}

// realItemIndex maps a shown item back to its 1-based position in the
// exercise's full item list.
func realItemIndex(ex *content.Exercise, item content.Item) int {
	for i := range ex.Items {
		if ex.Items[i].Prompt == item.Prompt && ex.Items[i].Canonical == item.Canonical {
			return i + 1
		}
	}
	return 0
}

// nextPlacement returns the learner's next placement question, or nil
// when placement is finished. The position advances at ask time, so a
// missed item is not re-asked.
func (e *Engine) nextPlacement(ctx context.Context, learnerID int) (*Question, error) {
	st, err := e.repos.Learners.State(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	if st.PlacementDone {
		return nil, nil
	}

	items, err := e.repos.Content.PlacementItems(ctx)
	if err != nil {
		return nil, err
	}
	var pick *content.PlacementItem
	for i := range items {
		if items[i].OrderIndex >= st.PlacementIndex {
			pick = &items[i]
			break
		}
	}
	if pick == nil {
		st.PlacementDone = true
		return nil, e.repos.Learners.UpdateState(ctx, st)
	}

	st.PlacementIndex = pick.OrderIndex + 1
	if err := e.repos.Learners.UpdateState(ctx, st); err != nil {
		return nil, err
	}

	return &Question{
		Source:      SourcePlacement,
		Placement:   pick,
		Instruction: pick.Instruction,
		Prompt:      pick.Prompt,
		Options:     pick.Options,
		IsChoice:    content.IsChoice(pick.Type),
		MultiSelect: pick.Type == grader.ItemMultiSelect,
	}, nil
}

// Feedback is the graded outcome of one answer.
type Feedback struct {
	Verdict          grader.Verdict
	EffectiveCorrect bool
	Canonical        string
	Note             string
	AttemptID        int

	// Explanation inputs, so the UI can offer "why?".
	UnitKey string
	Prompt  string
	Answer  string

	// ShowRules asks the UI to render remediation rules after the
	// feedback. RuleKeys name them; empty keys fall back to the unit.
	ShowRules bool
	RuleKeys  []string
}

// SubmitAnswer grades the pending question and appends the attempt.
// The session state does not move until Advance.
func (e *Engine) SubmitAnswer(ctx context.Context, learnerID int, answer string) (*Feedback, error) {
	s := e.session(learnerID)
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.pending
	if q == nil {
		return nil, ErrNothingPending
	}

	learner, err := e.repos.Learners.Get(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	mode := grader.ParseStrictness(learner.Strictness, grader.StrictnessNormal)

	res := gradeQuestion(q, answer, mode)
	effective := grader.EffectiveCorrect(res.Verdict, false, mode)

	att := store.AttemptData{
		LearnerID:        learnerID,
		SessionID:        s.id,
		Prompt:           q.Prompt,
		Answer:           answer,
		AnswerNorm:       res.Answer,
		Canonical:        res.Canonical,
		RuleKeys:         q.RuleKeys,
		Verdict:          string(res.Verdict),
		EffectiveCorrect: effective,
	}
	if q.Source == SourceDue {
		att.DueItemID = q.Due.ID
		att.UnitKey = q.Due.UnitKey
		att.ExerciseIndex = q.Exercise.ExerciseIndex
		att.ItemIndex = q.RealItemIndex
	}
	attemptID, err := e.repos.Attempts.Append(ctx, att)
	if err != nil {
		return nil, err
	}
	att.ID = attemptID
	s.lastAttempt = &att

	return &Feedback{
		Verdict:          res.Verdict,
		EffectiveCorrect: effective,
		Canonical:        res.Canonical,
		Note:             res.Note,
		AttemptID:        attemptID,
		UnitKey:          att.UnitKey,
		Prompt:           q.Prompt,
		Answer:           answer,
		ShowRules:        !effective,
		RuleKeys:         q.RuleKeys,
	}, nil
}

// gradeQuestion dispatches to free-text or option grading based on the
// question's type.
func gradeQuestion(q *Question, answer string, mode grader.Strictness) grader.Result {
	if q.Source == SourcePlacement {
		p := q.Placement
		if content.IsChoice(p.Type) {
			spec := grader.OptionSpec{
				Canonical:      p.Canonical,
				Options:        p.Options,
				Policy:         grader.SelectionPolicy(p.SelectionPolicy),
				CorrectOptions: p.CorrectOptions,
			}
			cfg := grader.ResolveOptionConfig(p.Type, spec, p.Instruction)
			return grader.GradeOption(answer, spec, cfg)
		}
		return grader.GradeFreeText(answer, p.Canonical, p.AcceptedVariants, mode)
	}

	item := q.Exercise.Items[q.RealItemIndex-1]
	if content.IsChoice(q.Exercise.Type) {
		spec := item.OptionSpec()
		cfg := grader.ResolveOptionConfig(q.Exercise.Type, spec, q.Exercise.Instruction)
		return grader.GradeOption(answer, spec, cfg)
	}
	return grader.GradeFreeText(answer, item.Canonical, item.AcceptedVariants, mode)
}

// Advance applies the scheduling consequences of the last answer and
// clears the pending question. flipped is true when an explanation
// overturned the verdict between SubmitAnswer and Advance.
func (e *Engine) Advance(ctx context.Context, learnerID int, flipped bool) error {
	s := e.session(learnerID)
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.pending
	att := s.lastAttempt
	if q == nil || att == nil {
		return fmt.Errorf("advance: %w", ErrNothingPending)
	}

	learner, err := e.repos.Learners.Get(ctx, learnerID)
	if err != nil {
		return err
	}
	mode := grader.ParseStrictness(learner.Strictness, grader.StrictnessNormal)
	effective := grader.EffectiveCorrect(grader.Verdict(att.Verdict), flipped, mode)

	switch q.Source {
	case SourcePlacement:
		err = e.advancePlacement(ctx, learnerID, q, effective)
	case SourceDue:
		err = e.advanceDue(ctx, learnerID, q, effective)
	}
	if err != nil {
		return err
	}

	s.pending = nil
	s.lastAttempt = nil
	return nil
}

// advancePlacement schedules detours for a missed placement item. The
// placement position itself moved at ask time.
func (e *Engine) advancePlacement(ctx context.Context, learnerID int, q *Question, effective bool) error {
	if effective {
		return nil
	}
	units := q.Placement.StudyUnitKeys()
	return e.applyDetours(ctx, learnerID, units, q.RuleKeys)
}

// advanceDue applies one answer to a due item: streak bookkeeping for
// detour and revisit, pass/fail resolution for check.
func (e *Engine) advanceDue(ctx context.Context, learnerID int, q *Question, effective bool) error {
	due := q.Due

	if due.Kind == schedule.KindCheck {
		if !effective {
			// The failed check escalates in place to a detour.
			return e.applyDetours(ctx, learnerID, []string{due.UnitKey}, q.RuleKeys)
		}
		due.IsActive = false
		return e.repos.Due.Update(ctx, &due)
	}

	inv, err := e.inventory(ctx, due.UnitKey)
	if err != nil {
		return err
	}
	selectedCount := len(selector.Select(inv, due.ID, due.UnitKey, due.Kind))

	progress, completed := schedule.Advance(due.Progress, q.ShownTotal, selectedCount, effective)
	if !completed {
		due.Progress = progress
		return e.repos.Due.Update(ctx, &due)
	}

	due.IsActive = false
	if err := e.repos.Due.Update(ctx, &due); err != nil {
		return err
	}
	if follow, ok := schedule.FollowUp(due, e.now()); ok {
		return e.repos.Due.Create(ctx, &follow)
	}
	return nil
}

// applyDetours runs the remediation trigger and persists its plan.
func (e *Engine) applyDetours(ctx context.Context, learnerID int, unitKeys, causeRuleKeys []string) error {
	existing, err := e.repos.Due.ActiveForUnits(ctx, learnerID, unitKeys)
	if err != nil {
		return err
	}
	plan := schedule.EnsureDetours(existing, learnerID, unitKeys, causeRuleKeys, e.now())
	for i := range plan.Create {
		if err := e.repos.Due.Create(ctx, &plan.Create[i]); err != nil {
			return err
		}
	}
	for i := range plan.Escalate {
		if err := e.repos.Due.Update(ctx, &plan.Escalate[i]); err != nil {
			return err
		}
	}
	return nil
}
