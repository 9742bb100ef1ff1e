package review

import "voiceinbox/internal/model"

// StartInput is the input for opening a review session.
type StartInput struct {
	// Text is the finished transcript from the speech-recognition engine.
	Text string
	// Aggressive overrides the configured extraction default when set.
	Aggressive *bool
}

// TaskDraftPatch is a partial edit of a task draft. Nil fields are left
// unchanged.
type TaskDraftPatch struct {
	Title    *string             `json:"title"`
	Notes    *string             `json:"notes"`
	DueDate  *string             `json:"due_date"`
	Priority *model.TaskPriority `json:"priority"`
	ListID   *string             `json:"list_id"`
	Tags     *[]string           `json:"tags"`
}

// NoteDraftPatch is a partial edit of a note draft.
type NoteDraftPatch struct {
	Title    *string   `json:"title"`
	Body     *string   `json:"body"`
	FolderID *string   `json:"folder_id"`
	Tags     *[]string `json:"tags"`
}

// ConfirmOutput reports what Confirm persisted.
type ConfirmOutput struct {
	TaskCount int `json:"task_count"`
	NoteCount int `json:"note_count"`
}
