package usecase

import (
	"context"
	"strings"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
	repo "task-assistant/internal/task/repository"
)

// Create inserts a new pending Task owned by the caller.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	fields := taskFields{
		Title:                    strings.TrimSpace(input.Title),
		Description:              input.Description,
		Notes:                    input.Notes,
		Status:                   model.TaskStatusPending,
		Priority:                 input.Priority,
		Category:                 input.Category,
		Tags:                     normalizeTags(input.Tags),
		EstimatedDurationMinutes: input.EstimatedDurationMinutes,
	}
	if err := fields.validate(); err != nil {
		return task.CreateOutput{}, err
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:                   sc.UserID,
		Title:                    fields.Title,
		Description:              fields.Description,
		Notes:                    fields.Notes,
		DueAt:                    input.DueAt,
		Status:                   fields.Status,
		Priority:                 fields.Priority,
		Category:                 fields.Category,
		Tags:                     fields.Tags,
		EstimatedDurationMinutes: fields.EstimatedDurationMinutes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.task.usecase.Create.CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	return task.CreateOutput{Task: t}, nil
}
