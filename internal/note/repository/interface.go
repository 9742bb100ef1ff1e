package repository

import (
	"context"

	"voiceinbox/internal/model"
)

// Repository is the storage contract for notes and note folders.
type Repository interface {
	CreateNote(ctx context.Context, n model.Note) error
	ListNotes(ctx context.Context) ([]model.Note, error)
	DeleteNote(ctx context.Context, id string) error

	CreateFolder(ctx context.Context, f model.NoteFolder) error
	GetFolder(ctx context.Context, id string) (model.NoteFolder, error)
	ListFolders(ctx context.Context) ([]model.NoteFolder, error)
}
