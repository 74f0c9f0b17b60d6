package catalog_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"task-assistant/internal/assistant/catalog"
	"task-assistant/internal/model"
	"task-assistant/internal/task"
	"task-assistant/pkg/schema"
)

var testNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

type fakeStore struct {
	tasks   []model.Task
	created []task.CreateInput
	updated []task.UpdateInput
	deleted []string
	err     error
}

func (f *fakeStore) List(ctx context.Context) ([]model.Task, error) {
	return f.tasks, f.err
}

func (f *fakeStore) Create(ctx context.Context, input task.CreateInput) (model.Task, error) {
	if f.err != nil {
		return model.Task{}, f.err
	}
	f.created = append(f.created, input)
	return model.Task{ID: "new", Title: input.Title, Status: model.TaskStatusPending}, nil
}

func (f *fakeStore) Update(ctx context.Context, input task.UpdateInput) (model.Task, error) {
	if f.err != nil {
		return model.Task{}, f.err
	}
	f.updated = append(f.updated, input)
	return model.Task{ID: input.ID}, nil
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func newRegistry() *catalog.Registry {
	return catalog.Default(schema.New())
}

func TestRegistry_Tools(t *testing.T) {
	tools := newRegistry().Tools()

	want := []string{"create_task", "update_task", "delete_task", "list_tasks"}
	if len(tools) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(tools))
	}
	for i, name := range want {
		if tools[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, tools[i].Name)
		}
		if tools[i].Description == "" || tools[i].Parameters["type"] != "object" {
			t.Errorf("%s: incomplete declaration", name)
		}
	}

	required, _ := tools[0].Parameters["required"].([]string)
	if len(required) != 1 || required[0] != "title" {
		t.Errorf("create_task must require only title, got %v", required)
	}
	if _, ok := tools[3].Parameters["required"]; ok {
		t.Errorf("list_tasks must not require anything")
	}
}

func TestRegistry_Bind(t *testing.T) {
	env := catalog.NewEnv(testNow, time.UTC)
	r := newRegistry()

	tests := []struct {
		name    string
		op      string
		args    map[string]interface{}
		wantErr error
		errText string
	}{
		{name: "Unknown operation", op: "drop_database", wantErr: catalog.ErrUnknownOperation, errText: "unknown operation: drop_database"},
		{name: "Create minimal", op: "create_task", args: map[string]interface{}{"title": "Buy milk"}},
		{name: "Create missing title", op: "create_task", args: map[string]interface{}{}, wantErr: catalog.ErrInvalidArguments, errText: "invalid arguments: title is required"},
		{name: "Create nil args", op: "create_task", wantErr: catalog.ErrInvalidArguments},
		{name: "Create bad priority", op: "create_task", args: map[string]interface{}{"title": "x", "priority": "asap"}, wantErr: catalog.ErrInvalidArguments, errText: "priority must be one of"},
		{name: "Create fractional duration", op: "create_task", args: map[string]interface{}{"title": "x", "estimated_duration_minutes": 1.5}, wantErr: catalog.ErrInvalidArguments},
		{name: "Create bad date", op: "create_task", args: map[string]interface{}{"title": "x", "due_at": "whenever"}, wantErr: catalog.ErrInvalidArguments, errText: "due_at"},
		{name: "Create too many tags", op: "create_task", args: map[string]interface{}{"title": "x", "tags": manyTags(21)}, wantErr: catalog.ErrInvalidArguments},
		{name: "Update missing id", op: "update_task", args: map[string]interface{}{"title": "x"}, wantErr: catalog.ErrInvalidArguments, errText: "task_id is required"},
		{name: "Update bad status", op: "update_task", args: map[string]interface{}{"task_id": "t1", "status": "archived"}, wantErr: catalog.ErrInvalidArguments},
		{name: "Update wrong type", op: "update_task", args: map[string]interface{}{"task_id": "t1", "title": 42.0}, wantErr: catalog.ErrInvalidArguments},
		{name: "Delete ok", op: "delete_task", args: map[string]interface{}{"task_id": "t1"}},
		{name: "List no filters", op: "list_tasks"},
		{name: "List bad due filter", op: "list_tasks", args: map[string]interface{}{"due_filter": "someday"}, wantErr: catalog.ErrInvalidArguments},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := r.Bind(tt.op, tt.args, env)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if cmd == nil {
					t.Fatal("expected a command")
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.errText != "" && !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("expected %q in %q", tt.errText, err.Error())
			}
		})
	}
}

func TestBind_DueDates(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	env := catalog.NewEnv(testNow, loc)
	r := newRegistry()

	cmd, err := r.Bind("create_task", map[string]interface{}{"title": "Dentist", "due_at": "2026-03-12"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	create := cmd.(catalog.CreateTask)
	want := time.Date(2026, 3, 12, 0, 0, 0, 0, loc)
	if create.Input.DueAt == nil || !create.Input.DueAt.Equal(want) {
		t.Errorf("expected %v, got %v", want, create.Input.DueAt)
	}

	cmd, err = r.Bind("update_task", map[string]interface{}{"task_id": "t1", "due_at": ""}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	update := cmd.(catalog.UpdateTask)
	if !update.Input.ClearDueAt || update.Input.DueAt != nil {
		t.Errorf("expected due date cleared, got %+v", update.Input)
	}

	cmd, err = r.Bind("update_task", map[string]interface{}{"task_id": "t1", "due_at": "tomorrow", "status": "done"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	update = cmd.(catalog.UpdateTask)
	// 15:00 UTC on the 10th is already midnight of the 11th in Tokyo.
	if update.Input.DueAt == nil || !update.Input.DueAt.Equal(want) {
		t.Errorf("expected %v, got %v", want, update.Input.DueAt)
	}
	if update.Input.Status == nil || *update.Input.Status != model.TaskStatusDone || update.Input.Title != nil {
		t.Errorf("unexpected input: %+v", update.Input)
	}
}

func TestCommands_Execute(t *testing.T) {
	ctx := context.Background()
	env := catalog.NewEnv(testNow, time.UTC)
	r := newRegistry()

	t.Run("Create forwards only given fields", func(t *testing.T) {
		s := &fakeStore{}
		cmd, _ := r.Bind("create_task", map[string]interface{}{"title": "Buy milk"}, env)

		out, err := cmd.Execute(ctx, s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := out.(model.Task); got.Title != "Buy milk" {
			t.Errorf("unexpected output: %+v", got)
		}
		in := s.created[0]
		if in.DueAt != nil || in.Priority != "" || in.Category != "" || in.Tags != nil || in.EstimatedDurationMinutes != nil {
			t.Errorf("expected optional fields unset, got %+v", in)
		}
	})

	t.Run("Update not found names the id", func(t *testing.T) {
		s := &fakeStore{err: task.ErrTaskNotFound}
		cmd, _ := r.Bind("update_task", map[string]interface{}{"task_id": "ghost", "title": "x"}, env)

		_, err := cmd.Execute(ctx, s)
		if !errors.Is(err, task.ErrTaskNotFound) || err.Error() != "task not found: ghost" {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Delete not found names the id", func(t *testing.T) {
		s := &fakeStore{err: task.ErrTaskNotFound}
		cmd, _ := r.Bind("delete_task", map[string]interface{}{"task_id": "ghost"}, env)

		if _, err := cmd.Execute(ctx, s); err == nil || err.Error() != "task not found: ghost" {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("List overdue excludes done and undated", func(t *testing.T) {
		past := testNow.Add(-time.Hour)
		s := &fakeStore{tasks: []model.Task{
			{ID: "1", Status: model.TaskStatusPending, DueAt: &past},
			{ID: "2", Status: model.TaskStatusDone, DueAt: &past},
			{ID: "3", Status: model.TaskStatusPending},
		}}
		cmd, _ := r.Bind("list_tasks", map[string]interface{}{"due_filter": "overdue"}, env)

		out, err := cmd.Execute(ctx, s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		res := out.(catalog.ListResult)
		if res.Count != 1 || res.Tasks[0].ID != "1" {
			t.Errorf("unexpected result: %+v", res)
		}
	})
}

func manyTags(n int) []interface{} {
	tags := make([]interface{}, n)
	for i := range tags {
		tags[i] = strings.Repeat("t", i+1)
	}
	return tags
}
