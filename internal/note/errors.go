package note

import "errors"

// Domain-specific errors for the note package.
var (
	ErrEmptyTitle      = errors.New("note title is empty")
	ErrEmptyFolderName = errors.New("folder name is empty")
	ErrNoteNotFound    = errors.New("note not found")
	ErrFolderNotFound  = errors.New("note folder not found")
)
