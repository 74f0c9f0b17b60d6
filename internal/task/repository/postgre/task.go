package postgre

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"task-assistant/internal/model"
	repo "task-assistant/internal/task/repository"
)

const taskColumns = `id, user_id, title, description, notes, due_at, status, priority, category,
	tags, estimated_duration_minutes, last_reminder_sent_at, created_at, updated_at`

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		INSERT INTO tasks (id, user_id, title, description, notes, due_at, status, priority, category,
			tags, estimated_duration_minutes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING %s`, taskColumns)

	row := r.db.QueryRow(ctx, query,
		uuid.NewString(), opt.UserID, opt.Title, opt.Description, opt.Notes, opt.DueAt,
		string(opt.Status), nullIfEmpty(string(opt.Priority)), nullIfEmpty(string(opt.Category)),
		nonNilTags(opt.Tags), opt.EstimatedDurationMinutes,
	)
	t, err := scanTask(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single Task owned by opt.UserID.
// Returns a zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = $1 AND user_id = $2 LIMIT 1`, taskColumns)

	t, err := scanTask(r.db.QueryRow(ctx, query, opt.ID, opt.UserID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a page of Tasks and the total count before pagination.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	where, whereArgs := r.buildWhere(opt)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", where)
	if err := r.db.QueryRow(ctx, countQuery, whereArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks %s", taskColumns, mods)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// UpdateTask overwrites a Task's mutable fields and refreshes updated_at.
// Returns a zero-value Task when no row matches.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks
		SET title = $3, description = $4, notes = $5, due_at = $6, status = $7, priority = $8,
			category = $9, tags = $10, estimated_duration_minutes = $11,
			updated_at = GREATEST(NOW(), created_at)
		WHERE id = $1 AND user_id = $2
		RETURNING %s`, taskColumns)

	row := r.db.QueryRow(ctx, query,
		opt.ID, opt.UserID, opt.Title, opt.Description, opt.Notes, opt.DueAt, string(opt.Status),
		nullIfEmpty(string(opt.Priority)), nullIfEmpty(string(opt.Category)),
		nonNilTags(opt.Tags), opt.EstimatedDurationMinutes,
	)
	t, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a Task and reports whether a row was deleted.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) (bool, error) {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, opt.ID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	return tag.RowsAffected() > 0, nil
}

func scanTask(row pgx.Row) (model.Task, error) {
	var (
		t                  model.Task
		status             string
		priority, category *string
	)
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Notes, &t.DueAt, &status, &priority, &category,
		&t.Tags, &t.EstimatedDurationMinutes, &t.LastReminderSentAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	t.Status = model.TaskStatus(status)
	if priority != nil {
		t.Priority = model.Priority(*priority)
	}
	if category != nil {
		t.Category = model.Category(*category)
	}
	return t, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// nonNilTags keeps pgx from encoding a nil slice as NULL.
func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
