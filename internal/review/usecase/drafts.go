package usecase

import (
	"context"
	"fmt"

	"voiceinbox/internal/model"
	"voiceinbox/internal/review"
)

// UpdateTaskDraft applies a partial edit to one task draft.
func (uc *implUseCase) UpdateTaskDraft(ctx context.Context, sessionID, draftID string, patch review.TaskDraftPatch) (model.ReviewSession, error) {
	session, ok := uc.sessions.Get(ctx, sessionID)
	if !ok {
		return model.ReviewSession{}, review.ErrSessionNotFound
	}

	tasks := make([]model.TaskDraft, len(session.Tasks))
	copy(tasks, session.Tasks)

	found := false
	for i := range tasks {
		if tasks[i].ID != draftID {
			continue
		}
		found = true
		if patch.Title != nil {
			tasks[i].Title = *patch.Title
		}
		if patch.Notes != nil {
			tasks[i].Notes = *patch.Notes
		}
		if patch.DueDate != nil {
			tasks[i].DueDate = *patch.DueDate
		}
		if patch.Priority != nil {
			tasks[i].Priority = *patch.Priority
		}
		if patch.ListID != nil {
			tasks[i].ListID = *patch.ListID
		}
		if patch.Tags != nil {
			tasks[i].Tags = *patch.Tags
		}
		break
	}
	if !found {
		return model.ReviewSession{}, review.ErrDraftNotFound
	}

	session.Tasks = tasks
	if err := uc.sessions.Save(ctx, session); err != nil {
		return model.ReviewSession{}, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// DeleteTaskDraft removes one task draft from the session.
func (uc *implUseCase) DeleteTaskDraft(ctx context.Context, sessionID, draftID string) (model.ReviewSession, error) {
	session, ok := uc.sessions.Get(ctx, sessionID)
	if !ok {
		return model.ReviewSession{}, review.ErrSessionNotFound
	}

	tasks := make([]model.TaskDraft, 0, len(session.Tasks))
	found := false
	for _, draft := range session.Tasks {
		if draft.ID == draftID {
			found = true
			continue
		}
		tasks = append(tasks, draft)
	}
	if !found {
		return model.ReviewSession{}, review.ErrDraftNotFound
	}

	session.Tasks = tasks
	if err := uc.sessions.Save(ctx, session); err != nil {
		return model.ReviewSession{}, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// UpdateNoteDraft applies a partial edit to one note draft.
func (uc *implUseCase) UpdateNoteDraft(ctx context.Context, sessionID, draftID string, patch review.NoteDraftPatch) (model.ReviewSession, error) {
	session, ok := uc.sessions.Get(ctx, sessionID)
	if !ok {
		return model.ReviewSession{}, review.ErrSessionNotFound
	}

	notes := make([]model.NoteDraft, len(session.Notes))
	copy(notes, session.Notes)

	found := false
	for i := range notes {
		if notes[i].ID != draftID {
			continue
		}
		found = true
		if patch.Title != nil {
			notes[i].Title = *patch.Title
		}
		if patch.Body != nil {
			notes[i].Body = *patch.Body
		}
		if patch.FolderID != nil {
			notes[i].FolderID = *patch.FolderID
		}
		if patch.Tags != nil {
			notes[i].Tags = *patch.Tags
		}
		break
	}
	if !found {
		return model.ReviewSession{}, review.ErrDraftNotFound
	}

	session.Notes = notes
	if err := uc.sessions.Save(ctx, session); err != nil {
		return model.ReviewSession{}, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// DeleteNoteDraft removes one note draft from the session.
func (uc *implUseCase) DeleteNoteDraft(ctx context.Context, sessionID, draftID string) (model.ReviewSession, error) {
	session, ok := uc.sessions.Get(ctx, sessionID)
	if !ok {
		return model.ReviewSession{}, review.ErrSessionNotFound
	}

	notes := make([]model.NoteDraft, 0, len(session.Notes))
	found := false
	for _, draft := range session.Notes {
		if draft.ID == draftID {
			found = true
			continue
		}
		notes = append(notes, draft)
	}
	if !found {
		return model.ReviewSession{}, review.ErrDraftNotFound
	}

	session.Notes = notes
	if err := uc.sessions.Save(ctx, session); err != nil {
		return model.ReviewSession{}, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}
