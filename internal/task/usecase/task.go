package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"voiceinbox/internal/model"
	"voiceinbox/internal/task"
)

// Create persists a confirmed draft as a permanent task with its own
// identity and timestamps.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (model.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return model.Task{}, task.ErrEmptyTitle
	}

	if input.ListID != "" {
		if _, err := uc.repo.GetList(ctx, input.ListID); err != nil {
			return model.Task{}, fmt.Errorf("failed to resolve list %q: %w", input.ListID, err)
		}
	}

	now := time.Now()
	t := model.Task{
		ID:                 uuid.NewString(),
		Title:              input.Title,
		Notes:              input.Notes,
		DueDate:            input.DueDate,
		Priority:           input.Priority,
		ListID:             input.ListID,
		Tags:               input.Tags,
		SourceTranscriptID: input.SourceTranscriptID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := uc.repo.CreateTask(ctx, t); err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	uc.l.Infof(ctx, "Create: task %q id=%s list=%s", t.Title, t.ID, t.ListID)
	return t, nil
}

// List returns all tasks, newest first.
func (uc *implUseCase) List(ctx context.Context) ([]model.Task, error) {
	return uc.repo.ListTasks(ctx)
}

// SetCompleted marks a task done or not done.
func (uc *implUseCase) SetCompleted(ctx context.Context, id string, completed bool) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		return model.Task{}, err
	}

	t.Completed = completed
	t.UpdatedAt = time.Now()

	if err := uc.repo.UpdateTask(ctx, t); err != nil {
		return model.Task{}, fmt.Errorf("failed to update task %q: %w", id, err)
	}
	return t, nil
}

// Delete removes a task.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.DeleteTask(ctx, id)
}
