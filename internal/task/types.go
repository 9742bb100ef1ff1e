package task

import "voiceinbox/internal/model"

// CreateInput carries the fields of a confirmed draft into persistence.
// The task gets its own identity and timestamps; the draft's ephemeral ID
// is discarded.
type CreateInput struct {
	Title              string
	Notes              string
	DueDate            string // YYYY-MM-DD, empty when none
	Priority           model.TaskPriority
	ListID             string
	Tags               []string
	SourceTranscriptID string
}
