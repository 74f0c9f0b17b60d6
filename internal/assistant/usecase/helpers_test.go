package usecase

import (
	"context"
	"fmt"
	"time"

	"task-assistant/internal/assistant/catalog"
	"task-assistant/internal/model"
	"task-assistant/internal/task"
	"task-assistant/pkg/llmprovider"
	"task-assistant/pkg/schema"
)

type mockLogger struct {
	errors []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {
	m.errors = append(m.errors, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var testNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

// memTasks is an in-memory task.UseCase partitioned by user id.
type memTasks struct {
	byUser   map[string][]model.Task
	seq      int
	listErr  error
	panicOn  string
	listCall int
}

func newMemTasks() *memTasks {
	return &memTasks{byUser: map[string][]model.Task{}}
}

func (m *memTasks) seed(userID string, tasks ...model.Task) {
	for _, t := range tasks {
		t.UserID = userID
		m.byUser[userID] = append(m.byUser[userID], t)
	}
}

func (m *memTasks) Create(ctx context.Context, sc model.Scope, in task.CreateInput) (task.CreateOutput, error) {
	if m.panicOn == in.Title {
		panic("boom")
	}
	m.seq++
	t := model.Task{
		ID:                       fmt.Sprintf("t-%d", m.seq),
		UserID:                   sc.UserID,
		Title:                    in.Title,
		Description:              in.Description,
		Notes:                    in.Notes,
		DueAt:                    in.DueAt,
		Status:                   model.TaskStatusPending,
		Priority:                 in.Priority,
		Category:                 in.Category,
		Tags:                     in.Tags,
		EstimatedDurationMinutes: in.EstimatedDurationMinutes,
		CreatedAt:                testNow,
		UpdatedAt:                testNow,
	}
	m.byUser[sc.UserID] = append(m.byUser[sc.UserID], t)
	return task.CreateOutput{Task: t}, nil
}

func (m *memTasks) List(ctx context.Context, sc model.Scope, in task.ListInput) (task.ListOutput, error) {
	m.listCall++
	if m.listErr != nil {
		return task.ListOutput{}, m.listErr
	}
	out := append([]model.Task{}, m.byUser[sc.UserID]...)
	return task.ListOutput{Tasks: out, Total: len(out)}, nil
}

func (m *memTasks) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	for _, t := range m.byUser[sc.UserID] {
		if t.ID == id {
			return task.DetailOutput{Task: t}, nil
		}
	}
	return task.DetailOutput{}, task.ErrTaskNotFound
}

func (m *memTasks) Update(ctx context.Context, sc model.Scope, in task.UpdateInput) (task.UpdateOutput, error) {
	tasks := m.byUser[sc.UserID]
	for i, t := range tasks {
		if t.ID != in.ID {
			continue
		}
		if in.Title != nil {
			t.Title = *in.Title
		}
		if in.Status != nil {
			t.Status = *in.Status
		}
		if in.Priority != nil {
			t.Priority = *in.Priority
		}
		if in.DueAt != nil {
			t.DueAt = in.DueAt
		}
		if in.ClearDueAt {
			t.DueAt = nil
		}
		tasks[i] = t
		return task.UpdateOutput{Task: t}, nil
	}
	return task.UpdateOutput{}, task.ErrTaskNotFound
}

func (m *memTasks) Delete(ctx context.Context, sc model.Scope, id string) error {
	tasks := m.byUser[sc.UserID]
	for i, t := range tasks {
		if t.ID == id {
			m.byUser[sc.UserID] = append(tasks[:i], tasks[i+1:]...)
			return nil
		}
	}
	return task.ErrTaskNotFound
}

// fakeModel returns a canned reply and records the request it received.
type fakeModel struct {
	reply *llmprovider.Response
	err   error
	got   *llmprovider.Request
	calls int
}

func (f *fakeModel) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.calls++
	f.got = req
	return f.reply, f.err
}

func reply(text string, calls ...llmprovider.FunctionCall) *llmprovider.Response {
	msg := llmprovider.Message{Role: llmprovider.RoleAssistant}
	if text != "" {
		msg.Parts = append(msg.Parts, llmprovider.Part{Text: text})
	}
	for i := range calls {
		msg.Parts = append(msg.Parts, llmprovider.Part{FunctionCall: &calls[i]})
	}
	return &llmprovider.Response{Content: msg, Usage: &llmprovider.Usage{}}
}

func call(id, name string, args map[string]interface{}) llmprovider.FunctionCall {
	return llmprovider.FunctionCall{ID: id, Name: name, Args: args}
}

func newTestUseCase(tasks *memTasks, m *fakeModel) (*implUseCase, *mockLogger) {
	l := &mockLogger{}
	uc := newUseCase(l, tasks, catalog.Default(schema.New()), m, Config{MaxContextTasks: 3, MaxHistory: 2})
	uc.now = func() time.Time { return testNow }
	seq := 0
	uc.newID = func() string {
		seq++
		return fmt.Sprintf("call_gen%d", seq)
	}
	return uc, l
}

func ptr[T any](v T) *T { return &v }
