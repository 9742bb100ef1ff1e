package note

// CreateInput carries the fields of a confirmed draft into persistence.
type CreateInput struct {
	Title              string
	Body               string
	FolderID           string
	Tags               []string
	SourceTranscriptID string
}
