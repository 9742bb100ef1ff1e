package repository

import (
	"context"

	"voiceinbox/internal/model"
)

// SessionRepository stores open review sessions. Sessions are ephemeral;
// implementations may evict them after a TTL, which surfaces to callers
// as a missing session.
type SessionRepository interface {
	Save(ctx context.Context, s model.ReviewSession) error
	Get(ctx context.Context, id string) (model.ReviewSession, bool)
	Delete(ctx context.Context, id string) error
}

// TranscriptRepository records the raw transcripts extraction ran on.
type TranscriptRepository interface {
	Create(ctx context.Context, t model.Transcript) error
	List(ctx context.Context) ([]model.Transcript, error)
}
