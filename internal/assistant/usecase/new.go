package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"task-assistant/internal/assistant"
	"task-assistant/internal/assistant/catalog"
	"task-assistant/internal/task"
	"task-assistant/pkg/llmprovider"
	"task-assistant/pkg/log"
)

// Generator is the language model client. llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config tunes how much context is sent to the model.
type Config struct {
	MaxContextTasks int
	MaxHistory      int
	DefaultLocation *time.Location
	Temperature     float64
}

type implUseCase struct {
	l        log.Logger
	taskUC   task.UseCase
	registry *catalog.Registry
	llm      Generator
	cfg      Config
	now      func() time.Time
	newID    func() string
}

// New creates a new assistant UseCase.
func New(l log.Logger, taskUC task.UseCase, registry *catalog.Registry, llm Generator, cfg Config) assistant.UseCase {
	return newUseCase(l, taskUC, registry, llm, cfg)
}

func newUseCase(l log.Logger, taskUC task.UseCase, registry *catalog.Registry, llm Generator, cfg Config) *implUseCase {
	if cfg.MaxContextTasks <= 0 {
		cfg.MaxContextTasks = assistant.DefaultMaxContext
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = assistant.DefaultMaxHistory
	}
	if cfg.DefaultLocation == nil {
		cfg.DefaultLocation = time.UTC
	}
	return &implUseCase{
		l:        l,
		taskUC:   taskUC,
		registry: registry,
		llm:      llm,
		cfg:      cfg,
		now:      time.Now,
		newID:    func() string { return callIDPrefix + uuid.NewString() },
	}
}
