package http

import (
	"github.com/gin-gonic/gin"

	"voiceinbox/internal/task"
	pkgLog "voiceinbox/pkg/log"
)

// Handler exposes the task domain over HTTP.
type Handler interface {
	ListTasks(c *gin.Context)
	UpdateTask(c *gin.Context)
	DeleteTask(c *gin.Context)
	ListLists(c *gin.Context)
	CreateList(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc task.UseCase
}

// New creates a new task HTTP handler.
func New(l pkgLog.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
