package store

import (
	"context"
	"fmt"

	"github.com/abhisek/shapewise/ent"
	"github.com/abhisek/shapewise/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent.
type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.client.LLMRequestEvent.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListLLMRequests(ctx context.Context, limit int) ([]*LLMRequestEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list LLM request events: %w", err)
	}

	events := make([]*LLMRequestEvent, len(rows))
	for i, row := range rows {
		events[i] = &LLMRequestEvent{
			ID:        row.ID,
			Timestamp: row.Timestamp,
			LLMRequestEventData: LLMRequestEventData{
				Provider:     row.Provider,
				Model:        row.Model,
				Purpose:      row.Purpose,
				InputTokens:  row.InputTokens,
				OutputTokens: row.OutputTokens,
				LatencyMs:    row.LatencyMs,
				Success:      row.Success,
				ErrorMessage: row.ErrorMessage,
			},
		}
	}
	return events, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error) {
	rows, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	byPurpose := make(map[string]*LLMUsageStat)
	var order []string
	var totalLatency = make(map[string]int64)
	for _, row := range rows {
		st, ok := byPurpose[row.Purpose]
		if !ok {
			st = &LLMUsageStat{Purpose: row.Purpose}
			byPurpose[row.Purpose] = st
			order = append(order, row.Purpose)
		}
		st.Calls++
		st.InputTokens += row.InputTokens
		st.OutputTokens += row.OutputTokens
		totalLatency[row.Purpose] += row.LatencyMs
	}

	stats := make([]LLMUsageStat, 0, len(order))
	for _, purpose := range order {
		st := byPurpose[purpose]
		if st.Calls > 0 {
			st.AvgLatencyMs = totalLatency[purpose] / int64(st.Calls)
		}
		stats = append(stats, *st)
	}
	return stats, nil
}
