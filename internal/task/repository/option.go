package repository

import (
	"time"

	"task-assistant/internal/model"
)

// Supported ListTasksOptions.OrderBy values.
const (
	OrderByCreatedAt = "created_at"
	OrderByDueAt     = "due_at"
	OrderByPriority  = "priority"
	OrderByTitle     = "title"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	UserID                   string
	Title                    string
	Description              string
	Notes                    string
	DueAt                    *time.Time
	Status                   model.TaskStatus
	Priority                 model.Priority
	Category                 model.Category
	Tags                     []string
	EstimatedDurationMinutes *int
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	UserID string
	ID     string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
// Limit <= 0 returns every row.
type ListTasksOptions struct {
	UserID  string
	Status  model.TaskStatus
	Limit   int
	Offset  int
	OrderBy string
}

// UpdateTaskOptions carries the full new state of a Task.
type UpdateTaskOptions struct {
	UserID                   string
	ID                       string
	Title                    string
	Description              string
	Notes                    string
	DueAt                    *time.Time
	Status                   model.TaskStatus
	Priority                 model.Priority
	Category                 model.Category
	Tags                     []string
	EstimatedDurationMinutes *int
}

// DeleteTaskOptions identifies the Task to remove.
type DeleteTaskOptions struct {
	UserID string
	ID     string
}
