package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	noteHTTP "voiceinbox/internal/note/delivery/http"
	reviewHTTP "voiceinbox/internal/review/delivery/http"
	"voiceinbox/internal/search"
	taskHTTP "voiceinbox/internal/task/delivery/http"

	"voiceinbox/internal/middleware"
	"voiceinbox/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domain handlers
	reviewHandler reviewHTTP.Handler
	taskHandler   taskHTTP.Handler
	noteHandler   noteHTTP.Handler
	searchHandler search.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	ReviewHandler reviewHTTP.Handler
	TaskHandler   taskHTTP.Handler
	NoteHandler   noteHTTP.Handler
	SearchHandler search.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		mw:            cfg.Middleware,
		reviewHandler: cfg.ReviewHandler,
		taskHandler:   cfg.TaskHandler,
		noteHandler:   cfg.NoteHandler,
		searchHandler: cfg.SearchHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.reviewHandler == nil {
		return errors.New("review handler is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	if srv.noteHandler == nil {
		return errors.New("note handler is required")
	}
	if srv.searchHandler == nil {
		return errors.New("search handler is required")
	}
	return nil
}
