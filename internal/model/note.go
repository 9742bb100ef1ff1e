package model

import "time"

// Note is a confirmed, persisted note.
type Note struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Body               string    `json:"body"`
	FolderID           string    `json:"folder_id"`
	Tags               []string  `json:"tags,omitempty"`
	SourceTranscriptID string    `json:"source_transcript_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// NoteFolder groups notes for display.
type NoteFolder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
