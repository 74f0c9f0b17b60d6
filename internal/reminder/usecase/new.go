package usecase

import (
	"time"

	"task-assistant/internal/reminder"
	"task-assistant/internal/reminder/repository"
	"task-assistant/pkg/log"
	"task-assistant/pkg/mailer"
)

const defaultBatchSize = 200

type implUseCase struct {
	repo      repository.Repository
	mailer    mailer.IMailer
	l         log.Logger
	batchSize int
	now       func() time.Time
}

// New creates the reminder UseCase. batchSize caps how many reminders one
// run sends.
func New(repo repository.Repository, m mailer.IMailer, l log.Logger, batchSize int) reminder.UseCase {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &implUseCase{
		repo:      repo,
		mailer:    m,
		l:         l,
		batchSize: batchSize,
		now:       time.Now,
	}
}
