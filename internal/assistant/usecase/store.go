package usecase

import (
	"context"

	"task-assistant/internal/assistant/catalog"
	"task-assistant/internal/model"
	"task-assistant/internal/task"
	repo "task-assistant/internal/task/repository"
)

// scopedStore binds the task UseCase to one caller so catalog commands
// never handle a user id.
type scopedStore struct {
	uc task.UseCase
	sc model.Scope
}

var _ catalog.Store = scopedStore{}

func newScopedStore(uc task.UseCase, sc model.Scope) scopedStore {
	return scopedStore{uc: uc, sc: sc}
}

func (s scopedStore) List(ctx context.Context) ([]model.Task, error) {
	out, err := s.uc.List(ctx, s.sc, task.ListInput{OrderBy: repo.OrderByCreatedAt})
	if err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

func (s scopedStore) Create(ctx context.Context, input task.CreateInput) (model.Task, error) {
	out, err := s.uc.Create(ctx, s.sc, input)
	if err != nil {
		return model.Task{}, err
	}
	return out.Task, nil
}

func (s scopedStore) Update(ctx context.Context, input task.UpdateInput) (model.Task, error) {
	out, err := s.uc.Update(ctx, s.sc, input)
	if err != nil {
		return model.Task{}, err
	}
	return out.Task, nil
}

func (s scopedStore) Delete(ctx context.Context, id string) error {
	return s.uc.Delete(ctx, s.sc, id)
}
