package repository

import (
	"context"

	"task-assistant/internal/model"
)

type Repository interface {
	// ListDue returns pending tasks with due_at - lead <= now < due_at, no
	// reminder sent yet, whose owner has reminders enabled and an email set.
	ListDue(ctx context.Context, opt ListDueOptions) ([]model.ReminderCandidate, error)
	// MarkSent stamps last_reminder_sent_at. It reports false when the task
	// was already stamped or no longer exists.
	MarkSent(ctx context.Context, opt MarkSentOptions) (bool, error)
}
