package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "task-assistant/internal/assistant/delivery/http"
	assistantUC "task-assistant/internal/assistant/usecase"
	"task-assistant/internal/assistant/catalog"
	"task-assistant/internal/middleware"
	prefHTTP "task-assistant/internal/preference/delivery/http"
	prefRepo "task-assistant/internal/preference/repository/postgre"
	prefUC "task-assistant/internal/preference/usecase"
	"task-assistant/internal/task"
	taskHTTP "task-assistant/internal/task/delivery/http"
	taskRepo "task-assistant/internal/task/repository/postgre"
	taskUC "task-assistant/internal/task/usecase"
	"task-assistant/pkg/schema"
)

// setupTaskDomain registers /api/v1/tasks and returns the task UseCase so
// the assistant shares the same store.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) task.UseCase {
	repo := taskRepo.New(srv.postgresDB, srv.l)
	uc := taskUC.New(repo, srv.l)
	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return uc
}

func (srv HTTPServer) setupPreferenceDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := prefRepo.New(srv.postgresDB, srv.l)
	uc := prefUC.New(repo, srv.l)
	h := prefHTTP.New(srv.l, uc)
	prefHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Preference domain registered")
}

func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, tasks task.UseCase) {
	registry := catalog.Default(schema.New())
	uc := assistantUC.New(srv.l, tasks, registry, srv.llm, srv.assistantConfig)
	h := assistantHTTP.New(srv.l, uc)
	assistantHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Assistant domain registered with %d operations", len(registry.List()))
}
