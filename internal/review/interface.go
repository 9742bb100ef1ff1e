package review

import (
	"context"

	"voiceinbox/internal/model"
)

// UseCase drives the review workflow: extract drafts from a transcript,
// let a human edit or delete them, then persist what is confirmed.
type UseCase interface {
	// Start records the transcript, runs extraction, and opens a review
	// session holding the resulting drafts.
	Start(ctx context.Context, sc model.Scope, input StartInput) (model.ReviewSession, error)

	// Get returns an open review session.
	Get(ctx context.Context, sessionID string) (model.ReviewSession, error)

	// UpdateTaskDraft applies a partial edit to one task draft. The draft
	// identifier is stable across edits.
	UpdateTaskDraft(ctx context.Context, sessionID, draftID string, patch TaskDraftPatch) (model.ReviewSession, error)

	// DeleteTaskDraft removes one task draft from the session.
	DeleteTaskDraft(ctx context.Context, sessionID, draftID string) (model.ReviewSession, error)

	// UpdateNoteDraft applies a partial edit to one note draft.
	UpdateNoteDraft(ctx context.Context, sessionID, draftID string, patch NoteDraftPatch) (model.ReviewSession, error)

	// DeleteNoteDraft removes one note draft from the session.
	DeleteNoteDraft(ctx context.Context, sessionID, draftID string) (model.ReviewSession, error)

	// Confirm persists every remaining draft as a permanent task or note
	// and closes the session.
	Confirm(ctx context.Context, sessionID string) (ConfirmOutput, error)

	// ListTranscripts returns recorded transcripts, newest first.
	ListTranscripts(ctx context.Context) ([]model.Transcript, error)
}
