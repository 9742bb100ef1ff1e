package search

import (
	"github.com/gin-gonic/gin"

	"voiceinbox/internal/note"
	"voiceinbox/internal/task"
	pkgLog "voiceinbox/pkg/log"
)

// Handler is the interface for the search handler.
type Handler interface {
	HandleSearch(c *gin.Context)
}

type handler struct {
	l      pkgLog.Logger
	taskUC task.UseCase
	noteUC note.UseCase
}

// New creates a new search handler over the task and note domains.
func New(l pkgLog.Logger, taskUC task.UseCase, noteUC note.UseCase) Handler {
	return &handler{
		l:      l,
		taskUC: taskUC,
		noteUC: noteUC,
	}
}
