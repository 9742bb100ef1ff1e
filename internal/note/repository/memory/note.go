// Package memory is the in-process stand-in for the external storage
// collaborator.
package memory

import (
	"context"
	"sort"
	"sync"

	"voiceinbox/internal/model"
	"voiceinbox/internal/note"
)

type implRepository struct {
	mu      sync.RWMutex
	notes   []model.Note
	folders []model.NoteFolder
}

// New creates an empty in-memory note repository.
func New() *implRepository {
	return &implRepository{}
}

func (r *implRepository) CreateNote(ctx context.Context, n model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notes = append(r.notes, n)
	return nil
}

// ListNotes returns notes newest first.
func (r *implRepository) ListNotes(ctx context.Context) ([]model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Note, len(r.notes))
	copy(out, r.notes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *implRepository) DeleteNote(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notes {
		if r.notes[i].ID == id {
			r.notes = append(r.notes[:i], r.notes[i+1:]...)
			return nil
		}
	}
	return note.ErrNoteNotFound
}

func (r *implRepository) CreateFolder(ctx context.Context, f model.NoteFolder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.folders = append(r.folders, f)
	return nil
}

func (r *implRepository) GetFolder(ctx context.Context, id string) (model.NoteFolder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.folders {
		if f.ID == id {
			return f, nil
		}
	}
	return model.NoteFolder{}, note.ErrFolderNotFound
}

// ListFolders returns note folders ordered by name.
func (r *implRepository) ListFolders(ctx context.Context) ([]model.NoteFolder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.NoteFolder, len(r.folders))
	copy(out, r.folders)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}
