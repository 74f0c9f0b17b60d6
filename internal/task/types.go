package task

import (
	"time"

	"task-assistant/internal/model"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Title                    string
	Description              string
	Notes                    string
	DueAt                    *time.Time
	Priority                 model.Priority
	Category                 model.Category
	Tags                     []string
	EstimatedDurationMinutes *int
}

// ListInput filters the caller's tasks. Status is pushed down to the store;
// DueFilter and Search are applied in memory with Filter, before pagination.
type ListInput struct {
	Status    model.TaskStatus
	DueFilter model.DueFilter
	Search    string
	Location  *time.Location
	OrderBy   string
	Limit     int
	Offset    int
}

// UpdateInput is a partial update. Nil fields are left unchanged.
// Tags replaces the whole set when non-nil; an empty slice clears it.
type UpdateInput struct {
	ID                       string
	Title                    *string
	Description              *string
	Notes                    *string
	DueAt                    *time.Time
	ClearDueAt               bool
	Status                   *model.TaskStatus
	Priority                 *model.Priority
	Category                 *model.Category
	Tags                     []string
	EstimatedDurationMinutes *int
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Task model.Task
}

type UpdateOutput struct {
	Task model.Task
}
