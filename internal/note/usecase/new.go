package usecase

import (
	"voiceinbox/internal/note/repository"
	pkgLog "voiceinbox/pkg/log"
)

type implUseCase struct {
	l                 pkgLog.Logger
	repo              repository.Repository
	defaultFolderName string
}

// New creates a new note UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, defaultFolderName string) *implUseCase {
	return &implUseCase{
		l:                 l,
		repo:              repo,
		defaultFolderName: defaultFolderName,
	}
}
