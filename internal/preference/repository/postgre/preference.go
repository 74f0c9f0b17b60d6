package postgre

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"task-assistant/internal/model"
	repo "task-assistant/internal/preference/repository"
)

const preferenceColumns = `user_id, reminder_lead_minutes, reminder_enabled, email,
	COALESCE(email_subject, ''), COALESCE(email_template, ''), created_at, updated_at`

// GetOnePreference returns a zero value (UserID == "") when the user has no row.
func (r *implRepository) GetOnePreference(ctx context.Context, userID string) (model.Preference, error) {
	const query = `SELECT ` + preferenceColumns + ` FROM preferences WHERE user_id = $1`

	p, err := scanPreference(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Preference{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOnePreference"), err)
		return model.Preference{}, repo.ErrFailedToGet
	}
	return p, nil
}

// UpdatePreference returns a zero value when the user has no row.
func (r *implRepository) UpdatePreference(ctx context.Context, opt repo.UpdatePreferenceOptions) (model.Preference, error) {
	const query = `
		UPDATE preferences
		SET reminder_lead_minutes = $2, reminder_enabled = $3, email = $4,
			email_subject = NULLIF($5, ''), email_template = NULLIF($6, ''),
			updated_at = GREATEST(NOW(), created_at)
		WHERE user_id = $1
		RETURNING ` + preferenceColumns

	p, err := scanPreference(r.db.QueryRow(ctx, query,
		opt.UserID, opt.ReminderLeadMinutes, opt.ReminderEnabled, opt.Email, opt.EmailSubject, opt.EmailTemplate,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Preference{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdatePreference"), err)
		return model.Preference{}, repo.ErrFailedToUpdate
	}
	return p, nil
}

func scanPreference(row pgx.Row) (model.Preference, error) {
	var p model.Preference
	err := row.Scan(
		&p.UserID, &p.ReminderLeadMinutes, &p.ReminderEnabled, &p.Email,
		&p.EmailSubject, &p.EmailTemplate, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}
