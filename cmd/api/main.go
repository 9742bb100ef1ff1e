package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voiceinbox/config"
	"voiceinbox/internal/extraction"
	"voiceinbox/internal/httpserver"
	"voiceinbox/internal/middleware"
	noteHTTP "voiceinbox/internal/note/delivery/http"
	noteMemory "voiceinbox/internal/note/repository/memory"
	noteUsecase "voiceinbox/internal/note/usecase"
	reviewHTTP "voiceinbox/internal/review/delivery/http"
	reviewMemory "voiceinbox/internal/review/repository/memory"
	reviewUsecase "voiceinbox/internal/review/usecase"
	"voiceinbox/internal/search"
	taskHTTP "voiceinbox/internal/task/delivery/http"
	taskMemory "voiceinbox/internal/task/repository/memory"
	taskUsecase "voiceinbox/internal/task/usecase"
	"voiceinbox/pkg/datemath"
	"voiceinbox/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice Inbox...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date resolution
	resolver, err := datemath.NewResolver(cfg.Extraction.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Extraction.Timezone, err)
		resolver, _ = datemath.NewResolver("UTC")
	}

	// 4. Extraction engine
	engine := extraction.New(extraction.NewUUIDGenerator(), resolver)

	// 5. Task & note domains
	taskRepo := taskMemory.New()
	taskUC := taskUsecase.New(logger, taskRepo, cfg.Defaults.TaskListName)

	noteRepo := noteMemory.New()
	noteUC := noteUsecase.New(logger, noteRepo, cfg.Defaults.NoteFolderName)

	// 6. Review workflow
	sessionStore := reviewMemory.NewSessionStore(
		cfg.Review.SessionCapacity,
		time.Duration(cfg.Review.SessionTTLMinutes)*time.Minute,
	)
	transcriptStore := reviewMemory.NewTranscriptStore()
	reviewUC := reviewUsecase.New(
		logger,
		engine,
		sessionStore,
		transcriptStore,
		taskUC,
		noteUC,
		cfg.Extraction.Aggressive,
	)

	// 7. HTTP delivery
	reviewHandler := reviewHTTP.New(logger, reviewUC)
	taskHandler := taskHTTP.New(logger, taskUC)
	noteHandler := noteHTTP.New(logger, noteUC)
	searchHandler := search.New(logger, taskUC, noteUC)

	mw := middleware.New(logger, cfg.Review.RateLimitPerMin)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,

		ReviewHandler: reviewHandler,
		TaskHandler:   taskHandler,
		NoteHandler:   noteHandler,
		SearchHandler: searchHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
