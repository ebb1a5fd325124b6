package store

import (
	"context"
	"fmt"

	"github.com/verba-app/verba/ent"
	"github.com/verba-app/verba/ent/llmrequestevent"
)

// llmEventRepo implements LLMEventRepo backed by ent and the global
// sequence counter.
type llmEventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *llmEventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *llmEventRepo) RecentLLMEvents(ctx context.Context, limit int) ([]LLMEventView, error) {
	rows, err := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	out := make([]LLMEventView, 0, len(rows))
	for _, row := range rows {
		out = append(out, viewFromRow(row))
	}
	return out, nil
}

func (r *llmEventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEventView, error) {
	row, err := r.client.LLMRequestEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	v := viewFromRow(row)
	return &v, nil
}

func (r *llmEventRepo) UsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error) {
	rows, err := r.client.LLMRequestEvent.Query().
		Order(ent.Asc(llmrequestevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	totals := make(map[string]*LLMPurposeUsage)
	latency := make(map[string]int64)
	var order []string
	for _, row := range rows {
		u, ok := totals[row.Purpose]
		if !ok {
			u = &LLMPurposeUsage{Purpose: row.Purpose}
			totals[row.Purpose] = u
			order = append(order, row.Purpose)
		}
		u.Calls++
		u.InputTokens += row.InputTokens
		u.OutputTokens += row.OutputTokens
		latency[row.Purpose] += row.LatencyMs
	}

	out := make([]LLMPurposeUsage, 0, len(order))
	for _, p := range order {
		u := *totals[p]
		if u.Calls > 0 {
			u.AvgLatencyMs = latency[p] / int64(u.Calls)
		}
		out = append(out, u)
	}
	return out, nil
}

func viewFromRow(row *ent.LLMRequestEvent) LLMEventView {
	return LLMEventView{
		ID:           row.ID,
		Timestamp:    row.Timestamp,
		Provider:     row.Provider,
		Model:        row.Model,
		Purpose:      row.Purpose,
		InputTokens:  row.InputTokens,
		OutputTokens: row.OutputTokens,
		LatencyMs:    row.LatencyMs,
		Success:      row.Success,
		ErrorMessage: row.ErrorMessage,
		RequestBody:  row.RequestBody,
		ResponseBody: row.ResponseBody,
	}
}

func (r *llmEventRepo) UsageSummary(ctx context.Context, purpose string) (LLMUsageSummary, error) {
	q := r.client.LLMRequestEvent.Query()
	if purpose != "" {
		q = q.Where(llmrequestevent.Purpose(purpose))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return LLMUsageSummary{}, fmt.Errorf("usage summary: %w", err)
	}

	var sum LLMUsageSummary
	for _, row := range rows {
		sum.Requests++
		if !row.Success {
			sum.Failures++
		}
		sum.InputTokens += row.InputTokens
		sum.OutputTokens += row.OutputTokens
	}
	return sum, nil
}
