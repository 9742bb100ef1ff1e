package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"voiceinbox/internal/model"
	"voiceinbox/internal/note"
)

// EnsureDefaultFolder guarantees at least one note folder exists and
// returns the first folder by name.
func (uc *implUseCase) EnsureDefaultFolder(ctx context.Context) (model.NoteFolder, error) {
	folders, err := uc.repo.ListFolders(ctx)
	if err != nil {
		return model.NoteFolder{}, fmt.Errorf("failed to list folders: %w", err)
	}

	if len(folders) == 0 {
		created, createErr := uc.CreateFolder(ctx, uc.defaultFolderName)
		if createErr != nil {
			return model.NoteFolder{}, fmt.Errorf("failed to create default folder: %w", createErr)
		}
		uc.l.Infof(ctx, "EnsureDefaultFolder: created default folder %q id=%s", created.Name, created.ID)
		return created, nil
	}

	return folders[0], nil
}

// CreateFolder creates a new note folder.
func (uc *implUseCase) CreateFolder(ctx context.Context, name string) (model.NoteFolder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.NoteFolder{}, note.ErrEmptyFolderName
	}

	folder := model.NoteFolder{
		ID:   uuid.NewString(),
		Name: name,
	}
	if err := uc.repo.CreateFolder(ctx, folder); err != nil {
		return model.NoteFolder{}, fmt.Errorf("failed to create folder: %w", err)
	}
	return folder, nil
}

// ListFolders returns all note folders ordered by name.
func (uc *implUseCase) ListFolders(ctx context.Context) ([]model.NoteFolder, error) {
	return uc.repo.ListFolders(ctx)
}

// Create persists a confirmed note draft as a permanent note.
func (uc *implUseCase) Create(ctx context.Context, input note.CreateInput) (model.Note, error) {
	if strings.TrimSpace(input.Title) == "" {
		return model.Note{}, note.ErrEmptyTitle
	}

	if input.FolderID != "" {
		if _, err := uc.repo.GetFolder(ctx, input.FolderID); err != nil {
			return model.Note{}, fmt.Errorf("failed to resolve folder %q: %w", input.FolderID, err)
		}
	}

	now := time.Now()
	n := model.Note{
		ID:                 uuid.NewString(),
		Title:              input.Title,
		Body:               input.Body,
		FolderID:           input.FolderID,
		Tags:               input.Tags,
		SourceTranscriptID: input.SourceTranscriptID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := uc.repo.CreateNote(ctx, n); err != nil {
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	uc.l.Infof(ctx, "Create: note %q id=%s folder=%s", n.Title, n.ID, n.FolderID)
	return n, nil
}

// List returns all notes, newest first.
func (uc *implUseCase) List(ctx context.Context) ([]model.Note, error) {
	return uc.repo.ListNotes(ctx)
}

// Delete removes a note.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.DeleteNote(ctx, id)
}
