package task

import (
	"context"

	"voiceinbox/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// EnsureDefaultList guarantees at least one task list exists and returns
	// the default (first by name). Extraction must not run without it.
	EnsureDefaultList(ctx context.Context) (model.TaskList, error)

	// CreateList creates a new task list.
	CreateList(ctx context.Context, name string) (model.TaskList, error)

	// ListLists returns all task lists ordered by name.
	ListLists(ctx context.Context) ([]model.TaskList, error)

	// Create persists a confirmed task draft as a permanent task.
	Create(ctx context.Context, input CreateInput) (model.Task, error)

	// List returns all tasks, newest first.
	List(ctx context.Context) ([]model.Task, error)

	// SetCompleted marks a task done or not done.
	SetCompleted(ctx context.Context, id string, completed bool) (model.Task, error)

	// Delete removes a task.
	Delete(ctx context.Context, id string) error
}
