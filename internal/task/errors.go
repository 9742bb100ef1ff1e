package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyTitle    = errors.New("task title is empty")
	ErrEmptyListName = errors.New("list name is empty")
	ErrTaskNotFound  = errors.New("task not found")
	ErrListNotFound  = errors.New("task list not found")
)
