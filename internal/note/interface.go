package note

import (
	"context"

	"voiceinbox/internal/model"
)

// UseCase defines the business logic interface for the note domain.
type UseCase interface {
	// EnsureDefaultFolder guarantees at least one note folder exists and
	// returns the default (first by name).
	EnsureDefaultFolder(ctx context.Context) (model.NoteFolder, error)

	// CreateFolder creates a new note folder.
	CreateFolder(ctx context.Context, name string) (model.NoteFolder, error)

	// ListFolders returns all note folders ordered by name.
	ListFolders(ctx context.Context) ([]model.NoteFolder, error)

	// Create persists a confirmed note draft as a permanent note.
	Create(ctx context.Context, input CreateInput) (model.Note, error)

	// List returns all notes, newest first.
	List(ctx context.Context) ([]model.Note, error)

	// Delete removes a note.
	Delete(ctx context.Context, id string) error
}
