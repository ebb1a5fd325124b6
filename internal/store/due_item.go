package store

import (
	"context"
	"fmt"
	"time"

	"github.com/verba-app/verba/ent"
	"github.com/verba-app/verba/ent/dueitem"
	"github.com/verba-app/verba/internal/schedule"
)

type dueRepo struct {
	client *ent.Client
}

func (r *dueRepo) Create(ctx context.Context, d *schedule.DueItem) error {
	row, err := r.client.DueItem.Create().
		SetLearnerID(d.LearnerID).
		SetKind(string(d.Kind)).
		SetUnitKey(d.UnitKey).
		SetDueAt(d.DueAt).
		SetExerciseIndex(d.Progress.ExerciseIndex).
		SetItemInExercise(d.Progress.ItemInExercise).
		SetCorrectInExercise(d.Progress.CorrectInExercise).
		SetBatchNum(d.BatchNum).
		SetIsActive(d.IsActive).
		SetCauseRuleKeys(d.CauseRuleKeys).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create due item %s/%s: %w", d.UnitKey, d.Kind, err)
	}
	d.ID = row.ID
	return nil
}

func (r *dueRepo) Update(ctx context.Context, d *schedule.DueItem) error {
	err := r.client.DueItem.UpdateOneID(d.ID).
		SetKind(string(d.Kind)).
		SetDueAt(d.DueAt).
		SetExerciseIndex(d.Progress.ExerciseIndex).
		SetItemInExercise(d.Progress.ItemInExercise).
		SetCorrectInExercise(d.Progress.CorrectInExercise).
		SetIsActive(d.IsActive).
		SetCauseRuleKeys(d.CauseRuleKeys).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update due item %d: %w", d.ID, err)
	}
	return nil
}

func (r *dueRepo) Deactivate(ctx context.Context, id int) error {
	err := r.client.DueItem.UpdateOneID(id).
		SetIsActive(false).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("deactivate due item %d: %w", id, err)
	}
	return nil
}

func (r *dueRepo) Active(ctx context.Context, learnerID int) ([]schedule.DueItem, error) {
	rows, err := r.client.DueItem.Query().
		Where(
			dueitem.LearnerID(learnerID),
			dueitem.IsActive(true),
		).
		Order(ent.Asc(dueitem.FieldDueAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("active due items: %w", err)
	}
	return mapDueItems(rows), nil
}

func (r *dueRepo) ActiveForUnits(ctx context.Context, learnerID int, unitKeys []string) ([]schedule.DueItem, error) {
	if len(unitKeys) == 0 {
		return nil, nil
	}
	rows, err := r.client.DueItem.Query().
		Where(
			dueitem.LearnerID(learnerID),
			dueitem.IsActive(true),
			dueitem.UnitKeyIn(unitKeys...),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("active due items for units: %w", err)
	}
	return mapDueItems(rows), nil
}

func (r *dueRepo) DueNow(ctx context.Context, learnerID int, now time.Time) ([]schedule.DueItem, error) {
	rows, err := r.client.DueItem.Query().
		Where(
			dueitem.LearnerID(learnerID),
			dueitem.IsActive(true),
			dueitem.DueAtLTE(now),
		).
		Order(ent.Asc(dueitem.FieldDueAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("due items: %w", err)
	}
	return mapDueItems(rows), nil
}

func (r *dueRepo) NextDueAt(ctx context.Context, learnerID int, now time.Time) (time.Time, bool, error) {
	row, err := r.client.DueItem.Query().
		Where(
			dueitem.LearnerID(learnerID),
			dueitem.IsActive(true),
			dueitem.DueAtGT(now),
		).
		Order(ent.Asc(dueitem.FieldDueAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("next due at: %w", err)
	}
	return row.DueAt, true, nil
}

func mapDueItems(rows []*ent.DueItem) []schedule.DueItem {
	out := make([]schedule.DueItem, len(rows))
	for i, row := range rows {
		out[i] = schedule.DueItem{
			ID:        row.ID,
			LearnerID: row.LearnerID,
			Kind:      schedule.Kind(row.Kind),
			UnitKey:   row.UnitKey,
			DueAt:     row.DueAt,
			Progress: schedule.Progress{
				ExerciseIndex:     row.ExerciseIndex,
				ItemInExercise:    row.ItemInExercise,
				CorrectInExercise: row.CorrectInExercise,
			},
			BatchNum:      row.BatchNum,
			IsActive:      row.IsActive,
			CauseRuleKeys: row.CauseRuleKeys,
		}
	}
	return out
}
