package usecase

import (
	"context"
	"time"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
	repo "task-assistant/internal/task/repository"
)

// List returns the caller's Tasks. Status and pagination go to the store
// unless an in-memory predicate is requested, in which case the whole set
// is fetched once, filtered, then paginated.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	if input.DueFilter == "" && input.Search == "" {
		tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
			UserID:  sc.UserID,
			Status:  input.Status,
			Limit:   input.Limit,
			Offset:  input.Offset,
			OrderBy: input.OrderBy,
		})
		if err != nil {
			uc.l.Errorf(ctx, "internal.task.usecase.List.ListTasks: %v", err)
			return task.ListOutput{}, err
		}
		return task.ListOutput{Tasks: tasks, Total: total, Limit: input.Limit, Offset: input.Offset}, nil
	}

	all, _, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:  sc.UserID,
		Status:  input.Status,
		OrderBy: input.OrderBy,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.task.usecase.List.ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	loc := input.Location
	if loc == nil {
		loc = time.UTC
	}
	filtered := task.Filter(all, task.FilterOptions{
		DueFilter: input.DueFilter,
		Search:    input.Search,
		Now:       uc.now(),
		Location:  loc,
	})

	return task.ListOutput{
		Tasks:  paginate(filtered, input.Limit, input.Offset),
		Total:  len(filtered),
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
