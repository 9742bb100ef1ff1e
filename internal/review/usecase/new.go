package usecase

import (
	"time"

	"voiceinbox/internal/extraction"
	"voiceinbox/internal/note"
	"voiceinbox/internal/review/repository"
	"voiceinbox/internal/task"
	pkgLog "voiceinbox/pkg/log"
)

type implUseCase struct {
	l           pkgLog.Logger
	engine      extraction.Engine
	sessions    repository.SessionRepository
	transcripts repository.TranscriptRepository
	taskUC      task.UseCase
	noteUC      note.UseCase

	aggressiveDefault bool
	now               func() time.Time
}

// New creates a new review UseCase instance.
func New(
	l pkgLog.Logger,
	engine extraction.Engine,
	sessions repository.SessionRepository,
	transcripts repository.TranscriptRepository,
	taskUC task.UseCase,
	noteUC note.UseCase,
	aggressiveDefault bool,
) *implUseCase {
	return &implUseCase{
		l:                 l,
		engine:            engine,
		sessions:          sessions,
		transcripts:       transcripts,
		taskUC:            taskUC,
		noteUC:            noteUC,
		aggressiveDefault: aggressiveDefault,
		now:               time.Now,
	}
}

// WithClock overrides the wall clock, for deterministic tests.
func (uc *implUseCase) WithClock(now func() time.Time) *implUseCase {
	uc.now = now
	return uc
}
