package http

import (
	"github.com/gin-gonic/gin"

	"voiceinbox/internal/note"
	pkgLog "voiceinbox/pkg/log"
)

// Handler exposes the note domain over HTTP.
type Handler interface {
	ListNotes(c *gin.Context)
	DeleteNote(c *gin.Context)
	ListFolders(c *gin.Context)
	CreateFolder(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc note.UseCase
}

// New creates a new note HTTP handler.
func New(l pkgLog.Logger, uc note.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
