package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"voiceinbox/internal/model"
	"voiceinbox/internal/task"
)

// EnsureDefaultList guarantees at least one task list exists and returns
// the first list by name. Review sessions cannot start without one.
func (uc *implUseCase) EnsureDefaultList(ctx context.Context) (model.TaskList, error) {
	lists, err := uc.repo.ListLists(ctx)
	if err != nil {
		return model.TaskList{}, fmt.Errorf("failed to list task lists: %w", err)
	}

	if len(lists) == 0 {
		created, createErr := uc.CreateList(ctx, uc.defaultListName)
		if createErr != nil {
			return model.TaskList{}, fmt.Errorf("failed to create default list: %w", createErr)
		}
		uc.l.Infof(ctx, "EnsureDefaultList: created default list %q id=%s", created.Name, created.ID)
		return created, nil
	}

	return lists[0], nil
}

// CreateList creates a new task list.
func (uc *implUseCase) CreateList(ctx context.Context, name string) (model.TaskList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.TaskList{}, task.ErrEmptyListName
	}

	list := model.TaskList{
		ID:   uuid.NewString(),
		Name: name,
	}
	if err := uc.repo.CreateList(ctx, list); err != nil {
		return model.TaskList{}, fmt.Errorf("failed to create list: %w", err)
	}
	return list, nil
}

// ListLists returns all task lists ordered by name.
func (uc *implUseCase) ListLists(ctx context.Context) ([]model.TaskList, error) {
	return uc.repo.ListLists(ctx)
}
