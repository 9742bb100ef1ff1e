package review

import "errors"

// Domain-specific errors for the review package.
var (
	ErrEmptyTranscript  = errors.New("transcript text is empty")
	ErrSessionNotFound  = errors.New("review session not found or expired")
	ErrDraftNotFound    = errors.New("draft not found in session")
	ErrNothingToConfirm = errors.New("session has no drafts left to confirm")
)
