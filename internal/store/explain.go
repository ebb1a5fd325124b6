package store

import (
	"context"
	"fmt"

	"github.com/verba-app/verba/ent"
	"github.com/verba-app/verba/ent/explaincache"
)

type explainRepo struct {
	client *ent.Client
}

func (r *explainRepo) Get(ctx context.Context, cacheKey string) (*ExplainEntry, error) {
	row, err := r.client.ExplainCache.Query().
		Where(explaincache.CacheKey(cacheKey)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("explain cache get: %w", err)
	}
	return &ExplainEntry{
		CacheKey:    row.CacheKey,
		Explanation: row.Explanation,
		VerdictFlip: row.VerdictFlip,
	}, nil
}

func (r *explainRepo) Put(ctx context.Context, e ExplainEntry) error {
	n, err := r.client.ExplainCache.Update().
		Where(explaincache.CacheKey(e.CacheKey)).
		SetExplanation(e.Explanation).
		SetVerdictFlip(e.VerdictFlip).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("explain cache update: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.ExplainCache.Create().
		SetCacheKey(e.CacheKey).
		SetExplanation(e.Explanation).
		SetVerdictFlip(e.VerdictFlip).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("explain cache insert: %w", err)
	}
	return nil
}
