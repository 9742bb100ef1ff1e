package http

import (
	"github.com/gin-gonic/gin"

	"voiceinbox/internal/review"
	pkgLog "voiceinbox/pkg/log"
)

// Handler exposes the review workflow over HTTP.
type Handler interface {
	StartExtraction(c *gin.Context)
	GetSession(c *gin.Context)
	UpdateTaskDraft(c *gin.Context)
	DeleteTaskDraft(c *gin.Context)
	UpdateNoteDraft(c *gin.Context)
	DeleteNoteDraft(c *gin.Context)
	Confirm(c *gin.Context)
	ListTranscripts(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc review.UseCase
}

// New creates a new review HTTP handler.
func New(l pkgLog.Logger, uc review.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
