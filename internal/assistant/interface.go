package assistant

import (
	"context"

	"task-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)
}
