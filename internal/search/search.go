package search

import (
	"context"
	"fmt"

	"voiceinbox/pkg/textmatch"
)

type candidate struct {
	result Result
	text   string
}

// search scores every task and note against the query and returns the
// best hits across both, highest score first.
func (h *handler) search(ctx context.Context, query string, limit int) (Output, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	tasks, err := h.taskUC.List(ctx)
	if err != nil {
		return Output{}, fmt.Errorf("failed to load tasks: %w", err)
	}
	notes, err := h.noteUC.List(ctx)
	if err != nil {
		return Output{}, fmt.Errorf("failed to load notes: %w", err)
	}

	candidates := make([]candidate, 0, len(tasks)+len(notes))
	for _, t := range tasks {
		candidates = append(candidates, candidate{
			result: Result{Kind: KindTask, ID: t.ID, Title: t.Title},
			text:   t.Title + " " + t.Notes,
		})
	}
	for _, n := range notes {
		candidates = append(candidates, candidate{
			result: Result{Kind: KindNote, ID: n.ID, Title: n.Title},
			text:   n.Title + " " + n.Body,
		})
	}

	matches := textmatch.Top(candidates, query, func(c candidate) string { return c.text }, limit)

	results := make([]Result, 0, len(matches))
	for _, m := range matches {
		r := m.Item.result
		r.Score = m.Score
		results = append(results, r)
	}

	return Output{Results: results, Count: len(results)}, nil
}
