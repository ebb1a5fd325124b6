package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/verba-app/verba/ent"
	"github.com/verba-app/verba/ent/attempt"
	"github.com/verba-app/verba/ent/dueitem"
	"github.com/verba-app/verba/ent/learner"
	"github.com/verba-app/verba/ent/learnerstate"
)

// ErrNoLearner is returned when a learner ID resolves to nothing.
var ErrNoLearner = errors.New("learner not found")

type learnerRepo struct {
	client *ent.Client
}

func (r *learnerRepo) GetOrCreate(ctx context.Context, name string) (*Learner, error) {
	row, err := r.client.Learner.Query().
		Where(learner.Name(name)).
		Only(ctx)
	if ent.IsNotFound(err) {
		row, err = r.client.Learner.Create().
			SetName(name).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("get or create learner %q: %w", name, err)
	}

	return &Learner{
		ID:         row.ID,
		Name:       row.Name,
		Strictness: row.Strictness,
		CreatedAt:  row.CreatedAt,
	}, nil
}

func (r *learnerRepo) Get(ctx context.Context, learnerID int) (*Learner, error) {
	row, err := r.client.Learner.Get(ctx, learnerID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("get learner %d: %w", learnerID, ErrNoLearner)
	}
	if err != nil {
		return nil, fmt.Errorf("get learner %d: %w", learnerID, err)
	}
	return &Learner{
		ID:         row.ID,
		Name:       row.Name,
		Strictness: row.Strictness,
		CreatedAt:  row.CreatedAt,
	}, nil
}

func (r *learnerRepo) SetStrictness(ctx context.Context, learnerID int, strictness string) error {
	err := r.client.Learner.UpdateOneID(learnerID).
		SetStrictness(strictness).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set strictness: %w", err)
	}
	return nil
}

func (r *learnerRepo) State(ctx context.Context, learnerID int) (*LearnerState, error) {
	row, err := r.client.LearnerState.Query().
		Where(learnerstate.LearnerID(learnerID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		row, err = r.client.LearnerState.Create().
			SetLearnerID(learnerID).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("learner state: %w", err)
	}

	return &LearnerState{
		LearnerID:        row.LearnerID,
		PlacementIndex:   row.PlacementIndex,
		PlacementCorrect: row.PlacementCorrect,
		PlacementDone:    row.PlacementDone,
		BatchNum:         row.BatchNum,
	}, nil
}

func (r *learnerRepo) UpdateState(ctx context.Context, st *LearnerState) error {
	n, err := r.client.LearnerState.Update().
		Where(learnerstate.LearnerID(st.LearnerID)).
		SetPlacementIndex(st.PlacementIndex).
		SetPlacementCorrect(st.PlacementCorrect).
		SetPlacementDone(st.PlacementDone).
		SetBatchNum(st.BatchNum).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update learner state: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("update learner state: no row for learner %d", st.LearnerID)
	}
	return nil
}

func (r *learnerRepo) Reset(ctx context.Context, learnerID int) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.DueItem.Delete().
		Where(dueitem.LearnerID(learnerID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete due items: %w", err)
	}
	if _, err := tx.Attempt.Delete().
		Where(attempt.LearnerID(learnerID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete attempts: %w", err)
	}
	if _, err := tx.LearnerState.Delete().
		Where(learnerstate.LearnerID(learnerID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete learner state: %w", err)
	}

	return tx.Commit()
}
