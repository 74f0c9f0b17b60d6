package postgre

import (
	"fmt"
	"strings"

	repo "task-assistant/internal/task/repository"
)

// orderClauses whitelists sortable columns. The map value is inlined into SQL.
var orderClauses = map[string]string{
	repo.OrderByCreatedAt: "created_at DESC, id",
	repo.OrderByDueAt:     "due_at ASC NULLS LAST, created_at DESC, id",
	repo.OrderByPriority: `CASE priority WHEN 'urgent' THEN 0 WHEN 'high' THEN 1 WHEN 'medium' THEN 2
		WHEN 'low' THEN 3 ELSE 4 END, due_at ASC NULLS LAST, id`,
	repo.OrderByTitle: "lower(title) ASC, id",
}

// buildWhere builds the WHERE clause + args shared by the count and page queries.
// The owner condition is always present.
func (r *implRepository) buildWhere(opt repo.ListTasksOptions) (string, []any) {
	conditions := []string{"user_id = $1"}
	args := []any{opt.UserID}

	if opt.Status != "" {
		args = append(args, string(opt.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	where, args := r.buildWhere(opt)
	parts := []string{"WHERE " + where}

	orderBy, ok := orderClauses[opt.OrderBy]
	if !ok {
		orderBy = orderClauses[repo.OrderByCreatedAt]
	}
	parts = append(parts, "ORDER BY "+orderBy)

	if opt.Limit > 0 {
		args = append(args, opt.Limit)
		parts = append(parts, fmt.Sprintf("LIMIT $%d", len(args)))
	}
	if opt.Offset > 0 {
		args = append(args, opt.Offset)
		parts = append(parts, fmt.Sprintf("OFFSET $%d", len(args)))
	}

	return strings.Join(parts, " "), args
}
