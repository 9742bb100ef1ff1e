package repository

import (
	"context"

	"voiceinbox/internal/model"
)

// Repository is the storage contract for tasks and task lists. The core
// pipeline never touches it; only the CRUD layers around extraction do.
type Repository interface {
	CreateTask(ctx context.Context, t model.Task) error
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context) ([]model.Task, error)
	UpdateTask(ctx context.Context, t model.Task) error
	DeleteTask(ctx context.Context, id string) error

	CreateList(ctx context.Context, l model.TaskList) error
	GetList(ctx context.Context, id string) (model.TaskList, error)
	ListLists(ctx context.Context) ([]model.TaskList, error)
}
