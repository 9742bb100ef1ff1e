package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"voiceinbox/internal/extraction"
	"voiceinbox/internal/model"
	"voiceinbox/internal/review"
)

// Start records the transcript, runs extraction, and opens a review
// session holding the resulting drafts.
func (uc *implUseCase) Start(ctx context.Context, sc model.Scope, input review.StartInput) (model.ReviewSession, error) {
	if strings.TrimSpace(input.Text) == "" {
		return model.ReviewSession{}, review.ErrEmptyTranscript
	}

	uc.l.Infof(ctx, "Start: user=%s transcript_length=%d", sc.UserID, len(input.Text))

	now := uc.now()

	transcript := model.Transcript{
		ID:        uuid.NewString(),
		Text:      input.Text,
		CreatedAt: now,
	}
	if err := uc.transcripts.Create(ctx, transcript); err != nil {
		return model.ReviewSession{}, fmt.Errorf("failed to record transcript: %w", err)
	}

	// The storage collaborator guarantees a default list and folder exist
	// before extraction runs.
	defaultList, err := uc.taskUC.EnsureDefaultList(ctx)
	if err != nil {
		return model.ReviewSession{}, fmt.Errorf("failed to ensure default task list: %w", err)
	}
	defaultFolder, err := uc.noteUC.EnsureDefaultFolder(ctx)
	if err != nil {
		return model.ReviewSession{}, fmt.Errorf("failed to ensure default note folder: %w", err)
	}

	aggressive := uc.aggressiveDefault
	if input.Aggressive != nil {
		aggressive = *input.Aggressive
	}

	result := uc.engine.Extract(input.Text, now, extraction.Options{
		Aggressive:          aggressive,
		DefaultTaskListID:   defaultList.ID,
		DefaultNoteFolderID: defaultFolder.ID,
	})

	session := model.ReviewSession{
		ID:           uuid.NewString(),
		TranscriptID: transcript.ID,
		CreatedAt:    now,
		Tasks:        result.Tasks,
		Notes:        result.Notes,
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return model.ReviewSession{}, fmt.Errorf("failed to save session: %w", err)
	}

	uc.l.Infof(ctx, "Start: session=%s tasks=%d notes=%d aggressive=%v",
		session.ID, len(session.Tasks), len(session.Notes), aggressive)
	return session, nil
}

// Get returns an open review session.
func (uc *implUseCase) Get(ctx context.Context, sessionID string) (model.ReviewSession, error) {
	session, ok := uc.sessions.Get(ctx, sessionID)
	if !ok {
		return model.ReviewSession{}, review.ErrSessionNotFound
	}
	return session, nil
}
