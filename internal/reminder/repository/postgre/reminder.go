package postgre

import (
	"context"

	"task-assistant/internal/model"
	repo "task-assistant/internal/reminder/repository"
)

const defaultListLimit = 200

func (r *implRepository) ListDue(ctx context.Context, opt repo.ListDueOptions) ([]model.ReminderCandidate, error) {
	const query = `
		SELECT t.id, t.user_id, t.title, t.description, t.due_at,
			p.email, p.reminder_lead_minutes,
			COALESCE(p.email_subject, ''), COALESCE(p.email_template, '')
		FROM tasks t
		JOIN preferences p ON p.user_id = t.user_id
		WHERE t.status = 'pending'
			AND t.due_at IS NOT NULL
			AND t.last_reminder_sent_at IS NULL
			AND p.reminder_enabled
			AND p.email <> ''
			AND t.due_at > $1
			AND t.due_at - make_interval(mins => p.reminder_lead_minutes) <= $1
		ORDER BY t.due_at ASC
		LIMIT $2`

	limit := opt.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := r.db.Query(ctx, query, opt.Now, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDue"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	out := make([]model.ReminderCandidate, 0)
	for rows.Next() {
		var c model.ReminderCandidate
		if err := rows.Scan(
			&c.TaskID, &c.UserID, &c.TaskTitle, &c.TaskDescription, &c.DueAt,
			&c.Email, &c.LeadMinutes, &c.EmailSubject, &c.EmailTemplate,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListDue"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListDue"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

func (r *implRepository) MarkSent(ctx context.Context, opt repo.MarkSentOptions) (bool, error) {
	const query = `
		UPDATE tasks SET last_reminder_sent_at = $2
		WHERE id = $1 AND last_reminder_sent_at IS NULL`

	tag, err := r.db.Exec(ctx, query, opt.TaskID, opt.SentAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkSent"), err)
		return false, repo.ErrFailedToUpdate
	}
	return tag.RowsAffected() == 1, nil
}
