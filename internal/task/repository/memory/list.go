package memory

import (
	"context"
	"sort"

	"voiceinbox/internal/model"
	"voiceinbox/internal/task"
)

func (r *implRepository) CreateList(ctx context.Context, l model.TaskList) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lists = append(r.lists, l)
	return nil
}

func (r *implRepository) GetList(ctx context.Context, id string) (model.TaskList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.lists {
		if l.ID == id {
			return l, nil
		}
	}
	return model.TaskList{}, task.ErrListNotFound
}

// ListLists returns task lists ordered by name.
func (r *implRepository) ListLists(ctx context.Context) ([]model.TaskList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.TaskList, len(r.lists))
	copy(out, r.lists)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}
