package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"task-assistant/internal/assistant"
	"task-assistant/internal/assistant/catalog"
	"task-assistant/internal/model"
	"task-assistant/pkg/llmprovider"
)

var alice = model.Scope{UserID: "alice"}

func TestChat_NoInvocations(t *testing.T) {
	tasks := newMemTasks()
	m := &fakeModel{reply: reply("Hello! How can I help?")}
	uc, _ := newTestUseCase(tasks, m)

	out, err := uc.Chat(context.Background(), alice, assistant.ChatInput{Message: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Response != "Hello! How can I help?" {
		t.Errorf("response = %q", out.Response)
	}
	if out.ExecutedTools != 0 || len(out.ToolResults) != 0 {
		t.Errorf("expected no tools, got %d / %d", out.ExecutedTools, len(out.ToolResults))
	}
}

func TestChat_ModelFailure(t *testing.T) {
	tasks := newMemTasks()
	m := &fakeModel{err: llmprovider.ErrAllProvidersFailed}
	uc, l := newTestUseCase(tasks, m)

	out, err := uc.Chat(context.Background(), alice, assistant.ChatInput{Message: "add buy milk"})
	if err != nil {
		t.Fatalf("model failure must not fail the request: %v", err)
	}
	if out.Response != FallbackMessage {
		t.Errorf("response = %q", out.Response)
	}
	if out.ExecutedTools != 0 || len(out.ToolResults) != 0 {
		t.Errorf("expected no tools, got %d", out.ExecutedTools)
	}
	if len(tasks.byUser["alice"]) != 0 {
		t.Error("no task should be created")
	}
	if len(l.errors) == 0 {
		t.Error("expected the upstream error to be logged")
	}
}

func TestChat_CreateTask(t *testing.T) {
	tasks := newMemTasks()
	m := &fakeModel{reply: reply("", call("c1", "create_task", map[string]interface{}{"title": "Buy milk"}))}
	uc, _ := newTestUseCase(tasks, m)

	out, err := uc.Chat(context.Background(), alice, assistant.ChatInput{Message: "add buy milk"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ExecutedTools != 1 || len(out.ToolResults) != 1 {
		t.Fatalf("expected 1 result, got %+v", out)
	}

	res := out.ToolResults[0]
	if !res.Success || res.ToolCallID != "c1" || res.Name != "create_task" {
		t.Fatalf("unexpected result: %+v", res)
	}
	created, ok := res.Result.(model.Task)
	if !ok {
		t.Fatalf("result should be the created task, got %T", res.Result)
	}
	if created.Title != "Buy milk" || created.Status != model.TaskStatusPending {
		t.Errorf("unexpected task: %+v", created)
	}
	if created.DueAt != nil || created.Priority != "" || created.Category != "" || created.EstimatedDurationMinutes != nil {
		t.Errorf("optional fields should be unset: %+v", created)
	}
	if !strings.Contains(out.Response, "1 of 1") {
		t.Errorf("composed reply = %q", out.Response)
	}
}

func TestChat_MixedInvocations(t *testing.T) {
	tasks := newMemTasks()
	tasks.seed("alice", model.Task{ID: "t-existing", Title: "Old", Status: model.TaskStatusPending})
	tasks.seed("bob", model.Task{ID: "t-bob", Title: "Bob's", Status: model.TaskStatusPending})

	m := &fakeModel{reply: reply("Working on it.",
		call("c1", "create_task", map[string]interface{}{"title": ""}),
		call("c2", "archive_task", map[string]interface{}{"task_id": "t-existing"}),
		call("c3", "update_task", map[string]interface{}{"task_id": "missing", "status": "done"}),
		call("c4", "update_task", map[string]interface{}{"task_id": "t-bob", "status": "done"}),
		llmprovider.FunctionCall{ID: "c5", Name: "delete_task", ArgsError: "malformed arguments: unexpected end of JSON input"},
		call("c6", "update_task", map[string]interface{}{"task_id": "t-existing", "status": "done"}),
	)}
	uc, _ := newTestUseCase(tasks, m)

	out, err := uc.Chat(context.Background(), alice, assistant.ChatInput{Message: "do stuff"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Response != "Working on it." {
		t.Errorf("model text should be kept, got %q", out.Response)
	}
	if out.ExecutedTools != 6 || len(out.ToolResults) != 6 {
		t.Fatalf("expected 6 results, got %d/%d", out.ExecutedTools, len(out.ToolResults))
	}

	want := []struct {
		id      string
		success bool
		errPart string
	}{
		{"c1", false, "invalid arguments: title is required"},
		{"c2", false, "unknown operation: archive_task"},
		{"c3", false, "task not found: missing"},
		{"c4", false, "task not found: t-bob"},
		{"c5", false, "invalid arguments: malformed arguments"},
		{"c6", true, ""},
	}
	for i, w := range want {
		got := out.ToolResults[i]
		if got.ToolCallID != w.id || got.Success != w.success {
			t.Errorf("result %d: got %+v, want id=%s success=%t", i, got, w.id, w.success)
		}
		if w.errPart != "" && !strings.Contains(got.Error, w.errPart) {
			t.Errorf("result %d: error %q should contain %q", i, got.Error, w.errPart)
		}
	}

	if tasks.byUser["bob"][0].Status != model.TaskStatusPending {
		t.Error("another user's task must not change")
	}
	if tasks.byUser["alice"][0].Status != model.TaskStatusDone {
		t.Error("the valid update should still apply")
	}
}

func TestChat_CreateThenList(t *testing.T) {
	tasks := newMemTasks()
	m := &fakeModel{reply: reply("",
		call("c1", "create_task", map[string]interface{}{
			"title":                      "Write report",
			"description":                "Q1 numbers",
			"priority":                   "high",
			"category":                   "work",
			"tags":                       []interface{}{"q1", "finance"},
			"due_at":                     "2026-03-12T09:00",
			"estimated_duration_minutes": float64(90),
		}),
		call("c2", "list_tasks", nil),
	)}
	uc, _ := newTestUseCase(tasks, m)

	out, err := uc.Chat(context.Background(), alice, assistant.ChatInput{Message: "add and list", Timezone: "Asia/Tokyo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.ToolResults) != 2 || !out.ToolResults[0].Success || !out.ToolResults[1].Success {
		t.Fatalf("unexpected results: %+v", out.ToolResults)
	}

	created := out.ToolResults[0].Result.(model.Task)
	listed := out.ToolResults[1].Result.(catalog.ListResult)
	if listed.Count != 1 {
		t.Fatalf("expected the created task in the list, got %d", listed.Count)
	}
	got := listed.Tasks[0]
	if got.ID != created.ID || got.Title != created.Title || got.Description != created.Description ||
		got.Priority != created.Priority || got.Category != created.Category ||
		!got.DueAt.Equal(*created.DueAt) || *got.EstimatedDurationMinutes != 90 ||
		strings.Join(got.Tags, ",") != "q1,finance" {
		t.Errorf("list does not round-trip: created %+v, listed %+v", created, got)
	}

	tokyo, _ := time.LoadLocation("Asia/Tokyo")
	if want := time.Date(2026, 3, 12, 9, 0, 0, 0, tokyo); !created.DueAt.Equal(want) {
		t.Errorf("due_at = %v, want %v", created.DueAt, want)
	}
}

func TestChat_ListOverdue(t *testing.T) {
	tasks := newMemTasks()
	past := testNow.Add(-48 * time.Hour)
	future := testNow.Add(48 * time.Hour)
	tasks.seed("alice",
		model.Task{ID: "late", Title: "Late", Status: model.TaskStatusPending, DueAt: &past},
		model.Task{ID: "late-done", Title: "Late but done", Status: model.TaskStatusDone, DueAt: &past},
		model.Task{ID: "soon", Title: "Soon", Status: model.TaskStatusPending, DueAt: &future},
		model.Task{ID: "undated", Title: "Whenever", Status: model.TaskStatusPending},
	)
	m := &fakeModel{reply: reply("", call("c1", "list_tasks", map[string]interface{}{"due_filter": "overdue"}))}
	uc, _ := newTestUseCase(tasks, m)

	out, err := uc.Chat(context.Background(), alice, assistant.ChatInput{Message: "what's overdue?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	listed := out.ToolResults[0].Result.(catalog.ListResult)
	if listed.Count != 1 || listed.Tasks[0].ID != "late" {
		t.Errorf("expected only the late pending task, got %+v", listed.Tasks)
	}
}

func TestChat_PanicIsContained(t *testing.T) {
	tasks := newMemTasks()
	tasks.panicOn = "explode"
	m := &fakeModel{reply: reply("",
		call("c1", "create_task", map[string]interface{}{"title": "explode"}),
		call("c2", "create_task", map[string]interface{}{"title": "fine"}),
	)}
	uc, l := newTestUseCase(tasks, m)

	out, err := uc.Chat(context.Background(), alice, assistant.ChatInput{Message: "go"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ToolResults[0].Success || out.ToolResults[0].Error == "" {
		t.Errorf("panicking invocation should fail: %+v", out.ToolResults[0])
	}
	if !out.ToolResults[1].Success {
		t.Errorf("next invocation should run: %+v", out.ToolResults[1])
	}
	if len(l.errors) == 0 {
		t.Error("expected the panic to be logged")
	}
}

func TestChat_GeneratesMissingCallIDs(t *testing.T) {
	tasks := newMemTasks()
	m := &fakeModel{reply: reply("", call("", "list_tasks", nil), call("", "list_tasks", nil))}
	uc, _ := newTestUseCase(tasks, m)

	out, err := uc.Chat(context.Background(), alice, assistant.ChatInput{Message: "list"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ToolResults[0].ToolCallID != "call_gen1" || out.ToolResults[1].ToolCallID != "call_gen2" {
		t.Errorf("unexpected ids: %s, %s", out.ToolResults[0].ToolCallID, out.ToolResults[1].ToolCallID)
	}
}

func TestChat_ContextReadFailureDegrades(t *testing.T) {
	tasks := newMemTasks()
	tasks.listErr = errors.New("db down")
	m := &fakeModel{reply: reply("I can't see your tasks right now.")}
	uc, _ := newTestUseCase(tasks, m)

	out, err := uc.Chat(context.Background(), alice, assistant.ChatInput{Message: "what's due?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.calls != 1 {
		t.Fatal("model should still be called")
	}
	if !strings.Contains(m.got.SystemInstruction.Text(), "unavailable") {
		t.Error("prompt should say the task list is unavailable")
	}
	if out.Response != "I can't see your tasks right now." {
		t.Errorf("response = %q", out.Response)
	}
}

func TestChat_StoreErrorIsHidden(t *testing.T) {
	tasks := newMemTasks()
	m := &fakeModel{reply: reply("", call("c1", "list_tasks", nil))}
	uc, _ := newTestUseCase(tasks, m)
	tasks.listErr = errors.New("pq: connection refused")

	out, err := uc.Chat(context.Background(), alice, assistant.ChatInput{Message: "list"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ToolResults[0].Success || out.ToolResults[0].Error != storeFailureMessage {
		t.Errorf("unexpected result: %+v", out.ToolResults[0])
	}
}

func TestChat_RequestShape(t *testing.T) {
	tasks := newMemTasks()
	m := &fakeModel{reply: reply("ok")}
	uc, _ := newTestUseCase(tasks, m)

	_, err := uc.Chat(context.Background(), alice, assistant.ChatInput{
		Message: "  and now?  ",
		History: []assistant.ChatTurn{
			{Role: assistant.RoleUser, Content: "first"},
			{Role: assistant.RoleAssistant, Content: "second"},
			{Role: assistant.RoleUser, Content: "third"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msgs := m.got.Messages
	if len(msgs) != 3 {
		t.Fatalf("expected 2 history turns + message, got %d", len(msgs))
	}
	if msgs[0].Text() != "second" || msgs[0].Role != llmprovider.RoleAssistant {
		t.Errorf("oldest turn should be dropped, got %+v", msgs[0])
	}
	if msgs[2].Text() != "and now?" || msgs[2].Role != llmprovider.RoleUser {
		t.Errorf("last message should be the trimmed input, got %+v", msgs[2])
	}
	if len(m.got.Tools) != 4 {
		t.Errorf("expected 4 tools, got %d", len(m.got.Tools))
	}
}

func TestChat_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input assistant.ChatInput
		want  error
	}{
		{"blank message", assistant.ChatInput{Message: "   "}, assistant.ErrEmptyMessage},
		{"too long", assistant.ChatInput{Message: strings.Repeat("a", assistant.MaxMessageLen+1)}, assistant.ErrMessageTooLong},
		{"bad timezone", assistant.ChatInput{Message: "hi", Timezone: "Mars/Olympus"}, assistant.ErrInvalidTimezone},
		{"bad role", assistant.ChatInput{Message: "hi", History: []assistant.ChatTurn{{Role: "system", Content: "x"}}}, assistant.ErrInvalidHistory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &fakeModel{reply: reply("ok")}
			uc, _ := newTestUseCase(newMemTasks(), m)

			_, err := uc.Chat(context.Background(), alice, tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if m.calls != 0 {
				t.Error("model must not be called for invalid input")
			}
		})
	}
}
