// Package memory is the in-process stand-in for the external storage
// collaborator. Persistence proper is out of scope for this service.
package memory

import (
	"sync"

	"voiceinbox/internal/model"
)

type implRepository struct {
	mu    sync.RWMutex
	tasks []model.Task
	lists []model.TaskList
}

// New creates an empty in-memory task repository.
func New() *implRepository {
	return &implRepository{}
}
