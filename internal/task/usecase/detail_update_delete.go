package usecase

import (
	"context"
	"strings"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
	repo "task-assistant/internal/task/repository"
)

// Detail retrieves a single Task. Returns ErrTaskNotFound when the caller
// does not own a Task with this id.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{UserID: sc.UserID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "internal.task.usecase.Detail.GetOneTask: %v", err)
		return task.DetailOutput{}, err
	}
	if t.ID == "" {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}
	return task.DetailOutput{Task: t}, nil
}

// Update applies a partial update. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{UserID: sc.UserID, ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "internal.task.usecase.Update.GetOneTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}

	fields := mergeFields(existing, input)
	if err := fields.validate(); err != nil {
		return task.UpdateOutput{}, err
	}

	dueAt := existing.DueAt
	if input.ClearDueAt {
		dueAt = nil
	} else if input.DueAt != nil {
		dueAt = input.DueAt
	}

	t, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		UserID:                   sc.UserID,
		ID:                       existing.ID,
		Title:                    fields.Title,
		Description:              fields.Description,
		Notes:                    fields.Notes,
		DueAt:                    dueAt,
		Status:                   fields.Status,
		Priority:                 fields.Priority,
		Category:                 fields.Category,
		Tags:                     fields.Tags,
		EstimatedDurationMinutes: fields.EstimatedDurationMinutes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.task.usecase.Update.UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	// Deleted between the read and the write.
	if t.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}
	return task.UpdateOutput{Task: t}, nil
}

// Delete removes a Task. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	deleted, err := uc.repo.DeleteTask(ctx, repo.DeleteTaskOptions{UserID: sc.UserID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "internal.task.usecase.Delete.DeleteTask: %v", err)
		return err
	}
	if !deleted {
		return task.ErrTaskNotFound
	}
	return nil
}

func mergeFields(existing model.Task, input task.UpdateInput) taskFields {
	f := taskFields{
		Title:                    existing.Title,
		Description:              existing.Description,
		Notes:                    existing.Notes,
		Status:                   existing.Status,
		Priority:                 existing.Priority,
		Category:                 existing.Category,
		Tags:                     existing.Tags,
		EstimatedDurationMinutes: existing.EstimatedDurationMinutes,
	}
	if input.Title != nil {
		f.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		f.Description = *input.Description
	}
	if input.Notes != nil {
		f.Notes = *input.Notes
	}
	if input.Status != nil {
		f.Status = *input.Status
	}
	if input.Priority != nil {
		f.Priority = *input.Priority
	}
	if input.Category != nil {
		f.Category = *input.Category
	}
	if input.Tags != nil {
		f.Tags = normalizeTags(input.Tags)
	}
	if input.EstimatedDurationMinutes != nil {
		f.EstimatedDurationMinutes = input.EstimatedDurationMinutes
	}
	return f
}
