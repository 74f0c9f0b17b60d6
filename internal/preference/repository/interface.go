package repository

import (
	"context"

	"task-assistant/internal/model"
)

// Repository reads and updates per-user preferences. Rows are created
// outside this service, so there is no insert.
type Repository interface {
	GetOnePreference(ctx context.Context, userID string) (model.Preference, error)
	UpdatePreference(ctx context.Context, opt UpdatePreferenceOptions) (model.Preference, error)
}

// UpdatePreferenceOptions carries the full new state of a Preference.
type UpdatePreferenceOptions struct {
	UserID              string
	ReminderLeadMinutes int
	ReminderEnabled     bool
	Email               string
	EmailSubject        string
	EmailTemplate       string
}
