package usecase

import (
	"time"

	"task-assistant/internal/task/repository"
	"task-assistant/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	now  func() time.Time
}

// New creates a new task UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		now:  time.Now,
	}
}
