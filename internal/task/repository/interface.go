package repository

import (
	"context"

	"task-assistant/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
// Every method is bounded by the owner's user id.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, opt DeleteTaskOptions) (bool, error)
}
