package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
)

var (
	testNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	alice   = model.Scope{UserID: "alice"}
	bob     = model.Scope{UserID: "bob"}
)

func newTestUseCase() (*implUseCase, *fakeRepo) {
	r := newFakeRepo(testNow)
	uc := New(r, &mockLogger{})
	uc.now = func() time.Time { return testNow }
	return uc, r
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Minimal task is pending with optional fields unset", func(t *testing.T) {
		uc, _ := newTestUseCase()

		out, err := uc.Create(ctx, alice, task.CreateInput{Title: "  Buy milk "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := out.Task
		if got.Title != "Buy milk" || got.Status != model.TaskStatusPending || got.UserID != "alice" {
			t.Errorf("unexpected task: %+v", got)
		}
		if got.DueAt != nil || got.Priority != "" || got.Category != "" || len(got.Tags) != 0 || got.EstimatedDurationMinutes != nil {
			t.Errorf("expected optional fields unset, got %+v", got)
		}
	})

	tests := []struct {
		name  string
		input task.CreateInput
	}{
		{"Blank title", task.CreateInput{Title: "   "}},
		{"Unknown priority", task.CreateInput{Title: "x", Priority: "critical"}},
		{"Unknown category", task.CreateInput{Title: "x", Category: "chores"}},
		{"Duplicate tags", task.CreateInput{Title: "x", Tags: []string{"a", " a"}}},
		{"Duration out of range", task.CreateInput{Title: "x", EstimatedDurationMinutes: ptr(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, r := newTestUseCase()
			_, err := uc.Create(ctx, alice, tt.input)
			if !errors.Is(err, task.ErrInvalidPayload) {
				t.Fatalf("expected ErrInvalidPayload, got %v", err)
			}
			if len(r.tasks) != 0 {
				t.Errorf("expected nothing stored")
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	due := testNow.Add(24 * time.Hour)

	t.Run("Partial update keeps untouched fields", func(t *testing.T) {
		uc, _ := newTestUseCase()
		created, _ := uc.Create(ctx, alice, task.CreateInput{Title: "Report", Description: "Q1", DueAt: &due, Tags: []string{"work"}})

		done := model.TaskStatusDone
		out, err := uc.Update(ctx, alice, task.UpdateInput{ID: created.Task.ID, Status: &done})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Status != model.TaskStatusDone || out.Task.Title != "Report" || out.Task.Description != "Q1" {
			t.Errorf("unexpected task: %+v", out.Task)
		}
		if out.Task.DueAt == nil || !out.Task.DueAt.Equal(due) {
			t.Errorf("expected due date kept")
		}
		if out.Task.UpdatedAt.Before(out.Task.CreatedAt) {
			t.Errorf("updated_at before created_at")
		}
	})

	t.Run("Clear due date and tags", func(t *testing.T) {
		uc, _ := newTestUseCase()
		created, _ := uc.Create(ctx, alice, task.CreateInput{Title: "Report", DueAt: &due, Tags: []string{"work"}})

		out, err := uc.Update(ctx, alice, task.UpdateInput{ID: created.Task.ID, ClearDueAt: true, Tags: []string{}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.DueAt != nil || len(out.Task.Tags) != 0 {
			t.Errorf("expected due date and tags cleared, got %+v", out.Task)
		}
	})

	t.Run("Unknown id", func(t *testing.T) {
		uc, _ := newTestUseCase()
		_, err := uc.Update(ctx, alice, task.UpdateInput{ID: "missing", Title: ptr("x")})
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Fatalf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("Another user's task is not found", func(t *testing.T) {
		uc, r := newTestUseCase()
		created, _ := uc.Create(ctx, alice, task.CreateInput{Title: "Private"})

		_, err := uc.Update(ctx, bob, task.UpdateInput{ID: created.Task.ID, Title: ptr("Hijacked")})
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Fatalf("expected ErrTaskNotFound, got %v", err)
		}
		if r.tasks[created.Task.ID].Title != "Private" {
			t.Errorf("task modified across users")
		}
	})

	t.Run("Blank title rejected", func(t *testing.T) {
		uc, _ := newTestUseCase()
		created, _ := uc.Create(ctx, alice, task.CreateInput{Title: "Report"})
		_, err := uc.Update(ctx, alice, task.UpdateInput{ID: created.Task.ID, Title: ptr(" ")})
		if !errors.Is(err, task.ErrInvalidPayload) {
			t.Fatalf("expected ErrInvalidPayload, got %v", err)
		}
	})
}

func TestDeleteAndDetail(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase()
	created, _ := uc.Create(ctx, alice, task.CreateInput{Title: "Temp"})

	if err := uc.Delete(ctx, bob, created.Task.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound for other user, got %v", err)
	}
	if _, err := uc.Detail(ctx, alice, created.Task.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Delete(ctx, alice, created.Task.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Detail(ctx, alice, created.Task.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound after delete, got %v", err)
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	uc, r := newTestUseCase()

	yesterday := testNow.Add(-24 * time.Hour)
	tomorrow := testNow.Add(24 * time.Hour)
	_, _ = uc.Create(ctx, alice, task.CreateInput{Title: "Late report", DueAt: &yesterday})
	_, _ = uc.Create(ctx, alice, task.CreateInput{Title: "Dentist", DueAt: &tomorrow})
	_, _ = uc.Create(ctx, alice, task.CreateInput{Title: "Someday"})
	_, _ = uc.Create(ctx, bob, task.CreateInput{Title: "Bob's late report", DueAt: &yesterday})

	t.Run("Store pagination without predicates", func(t *testing.T) {
		out, err := uc.List(ctx, alice, task.ListInput{Limit: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != 2 || out.Total != 3 {
			t.Errorf("expected 2 of 3, got %d of %d", len(out.Tasks), out.Total)
		}
	})

	t.Run("Overdue filter in memory", func(t *testing.T) {
		out, err := uc.List(ctx, alice, task.ListInput{DueFilter: model.DueFilterOverdue})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 1 || out.Tasks[0].Title != "Late report" {
			t.Errorf("unexpected result: %+v", out.Tasks)
		}
		last := r.listed[len(r.listed)-1]
		if last.Limit != 0 || last.UserID != "alice" {
			t.Errorf("expected a single unpaginated fetch for alice, got %+v", last)
		}
	})

	t.Run("Search with pagination past the end", func(t *testing.T) {
		out, err := uc.List(ctx, alice, task.ListInput{Search: "REPORT", Offset: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 1 || len(out.Tasks) != 0 {
			t.Errorf("unexpected result: total=%d tasks=%d", out.Total, len(out.Tasks))
		}
	})

	t.Run("Store failure", func(t *testing.T) {
		r.err = errStoreDown
		defer func() { r.err = nil }()
		if _, err := uc.List(ctx, alice, task.ListInput{}); !errors.Is(err, errStoreDown) {
			t.Fatalf("expected store error, got %v", err)
		}
	})
}
