package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"voiceinbox/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Running in production mode")
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	api := srv.gin.Group("/api/v1")

	// Extraction review workflow. Starting an extraction is the only
	// write path fed by raw client text, so it carries the rate limit.
	extractions := api.Group("/extractions")
	extractions.POST("", srv.mw.RateLimit(), srv.reviewHandler.StartExtraction)
	extractions.GET("/:id", srv.reviewHandler.GetSession)
	extractions.PATCH("/:id/tasks/:draftId", srv.reviewHandler.UpdateTaskDraft)
	extractions.DELETE("/:id/tasks/:draftId", srv.reviewHandler.DeleteTaskDraft)
	extractions.PATCH("/:id/notes/:draftId", srv.reviewHandler.UpdateNoteDraft)
	extractions.DELETE("/:id/notes/:draftId", srv.reviewHandler.DeleteNoteDraft)
	extractions.POST("/:id/confirm", srv.reviewHandler.Confirm)

	api.GET("/transcripts", srv.reviewHandler.ListTranscripts)

	tasks := api.Group("/tasks")
	tasks.GET("", srv.taskHandler.ListTasks)
	tasks.PATCH("/:id", srv.taskHandler.UpdateTask)
	tasks.DELETE("/:id", srv.taskHandler.DeleteTask)

	lists := api.Group("/lists")
	lists.GET("", srv.taskHandler.ListLists)
	lists.POST("", srv.taskHandler.CreateList)

	notes := api.Group("/notes")
	notes.GET("", srv.noteHandler.ListNotes)
	notes.DELETE("/:id", srv.noteHandler.DeleteNote)

	folders := api.Group("/folders")
	folders.GET("", srv.noteHandler.ListFolders)
	folders.POST("", srv.noteHandler.CreateFolder)

	api.GET("/search", srv.searchHandler.HandleSearch)

	return nil
}
