package model

import "time"

// Task is a confirmed, persisted task.
type Task struct {
	ID                 string       `json:"id"`
	Title              string       `json:"title"`
	Notes              string       `json:"notes,omitempty"`
	DueDate            string       `json:"due_date,omitempty"` // YYYY-MM-DD
	Priority           TaskPriority `json:"priority,omitempty"`
	Completed          bool         `json:"completed"`
	ListID             string       `json:"list_id"`
	Tags               []string     `json:"tags,omitempty"`
	SourceTranscriptID string       `json:"source_transcript_id,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// TaskList groups tasks for display.
type TaskList struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
