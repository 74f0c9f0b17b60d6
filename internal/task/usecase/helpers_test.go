package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"task-assistant/internal/model"
	repo "task-assistant/internal/task/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var errStoreDown = errors.New("store down")

// fakeRepo is an in-memory repository keyed by task id.
type fakeRepo struct {
	tasks  map[string]model.Task
	seq    int
	now    time.Time
	err    error
	listed []repo.ListTasksOptions
}

func newFakeRepo(now time.Time) *fakeRepo {
	return &fakeRepo{tasks: map[string]model.Task{}, now: now}
}

func (f *fakeRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	if f.err != nil {
		return model.Task{}, f.err
	}
	f.seq++
	t := model.Task{
		ID:                       "task-" + string(rune('a'+f.seq-1)),
		UserID:                   opt.UserID,
		Title:                    opt.Title,
		Description:              opt.Description,
		Notes:                    opt.Notes,
		DueAt:                    opt.DueAt,
		Status:                   opt.Status,
		Priority:                 opt.Priority,
		Category:                 opt.Category,
		Tags:                     opt.Tags,
		EstimatedDurationMinutes: opt.EstimatedDurationMinutes,
		CreatedAt:                f.now.Add(time.Duration(f.seq) * time.Second),
		UpdatedAt:                f.now.Add(time.Duration(f.seq) * time.Second),
	}
	f.tasks[t.ID] = t
	return t, nil
}

func (f *fakeRepo) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	if f.err != nil {
		return model.Task{}, f.err
	}
	t, ok := f.tasks[opt.ID]
	if !ok || t.UserID != opt.UserID {
		return model.Task{}, nil
	}
	return t, nil
}

func (f *fakeRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	f.listed = append(f.listed, opt)
	if f.err != nil {
		return nil, 0, f.err
	}
	out := []model.Task{}
	for _, t := range f.tasks {
		if t.UserID != opt.UserID || (opt.Status != "" && t.Status != opt.Status) {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	total := len(out)
	if opt.Offset > 0 && opt.Offset < len(out) {
		out = out[opt.Offset:]
	}
	if opt.Limit > 0 && opt.Limit < len(out) {
		out = out[:opt.Limit]
	}
	return out, total, nil
}

func (f *fakeRepo) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	if f.err != nil {
		return model.Task{}, f.err
	}
	t, ok := f.tasks[opt.ID]
	if !ok || t.UserID != opt.UserID {
		return model.Task{}, nil
	}
	t.Title = opt.Title
	t.Description = opt.Description
	t.Notes = opt.Notes
	t.DueAt = opt.DueAt
	t.Status = opt.Status
	t.Priority = opt.Priority
	t.Category = opt.Category
	t.Tags = opt.Tags
	t.EstimatedDurationMinutes = opt.EstimatedDurationMinutes
	t.UpdatedAt = t.CreatedAt.Add(time.Minute)
	f.tasks[t.ID] = t
	return t, nil
}

func (f *fakeRepo) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	t, ok := f.tasks[opt.ID]
	if !ok || t.UserID != opt.UserID {
		return false, nil
	}
	delete(f.tasks, opt.ID)
	return true, nil
}

func ptr[T any](v T) *T { return &v }
