package store

import (
	"context"
	"fmt"

	"github.com/verba-app/verba/ent"
	"github.com/verba-app/verba/ent/attempt"
)

type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Append(ctx context.Context, a AttemptData) (int, error) {
	row, err := r.client.Attempt.Create().
		SetLearnerID(a.LearnerID).
		SetDueItemID(a.DueItemID).
		SetSessionID(a.SessionID).
		SetUnitKey(a.UnitKey).
		SetExerciseIndex(a.ExerciseIndex).
		SetItemIndex(a.ItemIndex).
		SetPrompt(a.Prompt).
		SetAnswer(a.Answer).
		SetAnswerNorm(a.AnswerNorm).
		SetCanonical(a.Canonical).
		SetRuleKeys(a.RuleKeys).
		SetVerdict(a.Verdict).
		SetEffectiveCorrect(a.EffectiveCorrect).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("append attempt: %w", err)
	}
	return row.ID, nil
}

func (r *attemptRepo) MarkFlipped(ctx context.Context, attemptID int) error {
	err := r.client.Attempt.UpdateOneID(attemptID).
		SetFlipped(true).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("mark attempt %d flipped: %w", attemptID, err)
	}
	return nil
}

func (r *attemptRepo) UnitStats(ctx context.Context, learnerID int) ([]UnitStat, error) {
	rows, err := r.client.Attempt.Query().
		Where(
			attempt.LearnerID(learnerID),
			attempt.UnitKeyNEQ(""),
		).
		Order(ent.Asc(attempt.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("unit stats: %w", err)
	}

	byUnit := make(map[string]*UnitStat)
	var order []string
	for _, row := range rows {
		st, ok := byUnit[row.UnitKey]
		if !ok {
			st = &UnitStat{UnitKey: row.UnitKey}
			byUnit[row.UnitKey] = st
			order = append(order, row.UnitKey)
		}
		st.Total++
		if row.EffectiveCorrect {
			st.Correct++
		}
		if row.CreatedAt.After(st.LastSeen) {
			st.LastSeen = row.CreatedAt
		}
	}

	out := make([]UnitStat, len(order))
	for i, k := range order {
		out[i] = *byUnit[k]
	}
	return out, nil
}

func (r *attemptRepo) Recent(ctx context.Context, learnerID int, limit int) ([]AttemptData, error) {
	q := r.client.Attempt.Query().
		Where(attempt.LearnerID(learnerID)).
		Order(ent.Desc(attempt.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("recent attempts: %w", err)
	}

	out := make([]AttemptData, len(rows))
	for i, row := range rows {
		out[i] = AttemptData{
			ID:               row.ID,
			LearnerID:        row.LearnerID,
			DueItemID:        row.DueItemID,
			SessionID:        row.SessionID,
			UnitKey:          row.UnitKey,
			ExerciseIndex:    row.ExerciseIndex,
			ItemIndex:        row.ItemIndex,
			Prompt:           row.Prompt,
			Answer:           row.Answer,
			AnswerNorm:       row.AnswerNorm,
			Canonical:        row.Canonical,
			RuleKeys:         row.RuleKeys,
			Verdict:          row.Verdict,
			EffectiveCorrect: row.EffectiveCorrect,
			Flipped:          row.Flipped,
			CreatedAt:        row.CreatedAt,
		}
	}
	return out, nil
}
