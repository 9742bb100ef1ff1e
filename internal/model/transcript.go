package model

import "time"

// Transcript is the full recognized utterance for one recording session,
// as delivered by the external speech-recognition engine.
type Transcript struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
