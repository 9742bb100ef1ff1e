package model

import "time"

// TaskPriority is the coarse priority attached to a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// TaskDraft is an unconfirmed task candidate produced by extraction.
// It lives only in the review session; a confirmed draft becomes a Task
// with its own identity and timestamps.
type TaskDraft struct {
	ID         string       `json:"id"`
	Confidence float64      `json:"confidence"` // 0..1
	Title      string       `json:"title"`
	Notes      string       `json:"notes,omitempty"`
	DueDate    string       `json:"due_date,omitempty"` // YYYY-MM-DD
	Priority   TaskPriority `json:"priority,omitempty"`
	ListID     string       `json:"list_id"`
	Tags       []string     `json:"tags,omitempty"`
}

// NoteDraft is an unconfirmed note candidate produced by extraction.
type NoteDraft struct {
	ID         string   `json:"id"`
	Confidence float64  `json:"confidence"` // 0..1
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	FolderID   string   `json:"folder_id"`
	Tags       []string `json:"tags,omitempty"`
}

// ReviewSession holds one extraction's drafts while a human reviews them.
type ReviewSession struct {
	ID           string      `json:"id"`
	TranscriptID string      `json:"transcript_id"`
	CreatedAt    time.Time   `json:"created_at"`
	Tasks        []TaskDraft `json:"tasks"`
	Notes        []NoteDraft `json:"notes"`
}
