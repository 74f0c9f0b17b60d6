package usecase

import (
	"task-assistant/internal/preference/repository"
	"task-assistant/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new preference UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{repo: repo, l: l}
}
