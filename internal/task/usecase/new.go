package usecase

import (
	"voiceinbox/internal/task/repository"
	pkgLog "voiceinbox/pkg/log"
)

type implUseCase struct {
	l               pkgLog.Logger
	repo            repository.Repository
	defaultListName string
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, defaultListName string) *implUseCase {
	return &implUseCase{
		l:               l,
		repo:            repo,
		defaultListName: defaultListName,
	}
}
