package postgre

import (
	"reflect"
	"strings"
	"testing"

	"task-assistant/internal/model"
	repo "task-assistant/internal/task/repository"
)

func TestBuildListQuery(t *testing.T) {
	r := &implRepository{}

	tests := []struct {
		name     string
		opt      repo.ListTasksOptions
		wantSQL  []string
		wantArgs []any
	}{
		{
			name:     "Owner only",
			opt:      repo.ListTasksOptions{UserID: "u1"},
			wantSQL:  []string{"WHERE user_id = $1", "ORDER BY created_at DESC"},
			wantArgs: []any{"u1"},
		},
		{
			name:     "Status and pagination",
			opt:      repo.ListTasksOptions{UserID: "u1", Status: model.TaskStatusDone, Limit: 10, Offset: 20},
			wantSQL:  []string{"user_id = $1 AND status = $2", "LIMIT $3", "OFFSET $4"},
			wantArgs: []any{"u1", "done", 10, 20},
		},
		{
			name:     "Unknown order falls back",
			opt:      repo.ListTasksOptions{UserID: "u1", OrderBy: "id; DROP TABLE tasks"},
			wantSQL:  []string{"ORDER BY created_at DESC"},
			wantArgs: []any{"u1"},
		},
		{
			name:     "Due order",
			opt:      repo.ListTasksOptions{UserID: "u1", OrderBy: repo.OrderByDueAt},
			wantSQL:  []string{"ORDER BY due_at ASC NULLS LAST"},
			wantArgs: []any{"u1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := r.buildListQuery(tt.opt)
			for _, want := range tt.wantSQL {
				if !strings.Contains(sql, want) {
					t.Errorf("expected %q in %q", want, sql)
				}
			}
			if strings.Contains(sql, "DROP") {
				t.Errorf("order by leaked into SQL: %q", sql)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("expected args %v, got %v", tt.wantArgs, args)
			}
		})
	}
}

func TestNonNilTags(t *testing.T) {
	if got := nonNilTags(nil); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
	if got := nonNilTags([]string{"a"}); len(got) != 1 {
		t.Errorf("expected tags to pass through, got %v", got)
	}
}
