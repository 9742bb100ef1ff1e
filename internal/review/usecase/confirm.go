package usecase

import (
	"context"
	"fmt"

	"voiceinbox/internal/model"
	"voiceinbox/internal/note"
	"voiceinbox/internal/review"
	"voiceinbox/internal/task"
)

// Confirm persists every draft still in the session as a permanent task
// or note, then closes the session. Entities get fresh identities and
// timestamps; the transcript linkage comes from the session, not from the
// drafts' ephemeral identifiers.
func (uc *implUseCase) Confirm(ctx context.Context, sessionID string) (review.ConfirmOutput, error) {
	session, ok := uc.sessions.Get(ctx, sessionID)
	if !ok {
		return review.ConfirmOutput{}, review.ErrSessionNotFound
	}

	if len(session.Tasks) == 0 && len(session.Notes) == 0 {
		// Nothing left: the reviewer deleted every draft. Close the session.
		_ = uc.sessions.Delete(ctx, sessionID)
		return review.ConfirmOutput{}, review.ErrNothingToConfirm
	}

	out := review.ConfirmOutput{}

	for _, draft := range session.Tasks {
		if _, err := uc.taskUC.Create(ctx, task.CreateInput{
			Title:              draft.Title,
			Notes:              draft.Notes,
			DueDate:            draft.DueDate,
			Priority:           draft.Priority,
			ListID:             draft.ListID,
			Tags:               draft.Tags,
			SourceTranscriptID: session.TranscriptID,
		}); err != nil {
			return review.ConfirmOutput{}, fmt.Errorf("failed to persist task draft %q: %w", draft.ID, err)
		}
		out.TaskCount++
	}

	for _, draft := range session.Notes {
		if _, err := uc.noteUC.Create(ctx, note.CreateInput{
			Title:              draft.Title,
			Body:               draft.Body,
			FolderID:           draft.FolderID,
			Tags:               draft.Tags,
			SourceTranscriptID: session.TranscriptID,
		}); err != nil {
			return review.ConfirmOutput{}, fmt.Errorf("failed to persist note draft %q: %w", draft.ID, err)
		}
		out.NoteCount++
	}

	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		return review.ConfirmOutput{}, fmt.Errorf("failed to close session: %w", err)
	}

	uc.l.Infof(ctx, "Confirm: session=%s tasks=%d notes=%d", sessionID, out.TaskCount, out.NoteCount)
	return out, nil
}

// ListTranscripts returns recorded transcripts, newest first.
func (uc *implUseCase) ListTranscripts(ctx context.Context) ([]model.Transcript, error) {
	return uc.transcripts.List(ctx)
}
