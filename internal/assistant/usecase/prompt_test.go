package usecase

import (
	"strings"
	"testing"
	"time"

	"task-assistant/internal/model"
)

func TestBuildSystemPrompt(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// 2026-03-11 01:30 UTC is 2026-03-10 21:30 in New York.
	now := time.Date(2026, 3, 11, 1, 30, 0, 0, time.UTC)
	todayLate := time.Date(2026, 3, 10, 23, 0, 0, 0, ny)
	yesterday := time.Date(2026, 3, 9, 12, 0, 0, 0, ny)

	tasks := []model.Task{
		{ID: "a", Title: "Tonight", Status: model.TaskStatusPending, DueAt: &todayLate, Priority: model.PriorityHigh},
		{ID: "b", Title: "Missed", Status: model.TaskStatusPending, DueAt: &yesterday},
		{ID: "c", Title: "Finished", Status: model.TaskStatusDone, DueAt: &yesterday},
		{ID: "d", Title: "Someday", Status: model.TaskStatusPending},
	}

	got := buildSystemPrompt(now, ny, tasks, true, 3)

	for _, want := range []string{
		"Now: 2026-03-10 21:30 (Tuesday, America/New_York)",
		"Tomorrow: 2026-03-11",
		"This week: 2026-03-09 to 2026-03-15",
		"Total: 4 | Pending: 3 | Done: 1 | Due today: 1 | Overdue: 1",
		"- [a] Tonight | pending | priority: high | due: 2026-03-10 23:00",
		"- [c] Finished | done",
		"... and 1 more",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q\n%s", want, got)
		}
	}
	if strings.Contains(got, "[d]") {
		t.Error("tasks beyond the limit should not be listed")
	}
}

func TestBuildSystemPrompt_Unavailable(t *testing.T) {
	got := buildSystemPrompt(testNow, time.UTC, nil, false, 10)
	if !strings.Contains(got, "unavailable") || strings.Contains(got, "Total:") {
		t.Errorf("unexpected prompt:\n%s", got)
	}
}
