package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-assistant/config"
	"task-assistant/config/postgre"
	_ "task-assistant/docs" // Swagger docs
	"task-assistant/internal/assistant/usecase"
	"task-assistant/internal/httpserver"
	"task-assistant/pkg/llmprovider"
	"task-assistant/pkg/log"
	"task-assistant/pkg/scope"
)

// @title       Task Assistant API
// @description Conversational task management backed by PostgreSQL and a pluggable language model.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Assistant API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	if cfg.Postgres.MigrateOnStart {
		if err := postgre.Migrate(ctx, logger, cfg.Postgres); err != nil {
			logger.Error(ctx, "Failed to run migrations: ", err)
			return
		}
	}

	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, logger, postgresDB)

	// 4. Identity
	scopeManager, err := scope.New(scope.Config{
		Secret:    cfg.Auth.JWTSecret,
		Issuer:    cfg.Auth.Issuer,
		Audience:  cfg.Auth.Audience,
		CacheSize: cfg.Auth.CacheSize,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize token verification: ", err)
		return
	}

	// 5. Language model
	if err := cfg.LLM.Validate(); err != nil {
		logger.Error(ctx, "Invalid LLM configuration: ", err)
		return
	}
	providers, err := llmprovider.InitializeProviders(ctx, logger, &cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Invalid LLM manager configuration: ", err)
		return
	}
	llm := llmprovider.NewManager(providers, managerCfg, logger)
	logger.Infof(ctx, "LLM providers ready: %d", len(providers))

	defaultLoc, err := time.LoadLocation(cfg.Assistant.DefaultTimezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid default timezone %q, falling back to UTC: %v", cfg.Assistant.DefaultTimezone, err)
		defaultLoc = time.UTC
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		PostgresDB:      postgresDB,
		ScopeManager:    scopeManager,
		RateLimit:       cfg.RateLimit,
		LLM:             llm,
		AssistantConfig: usecase.Config{
			MaxContextTasks: cfg.Assistant.MaxContextTasks,
			MaxHistory:      cfg.Assistant.MaxHistory,
			DefaultLocation: defaultLoc,
			Temperature:     cfg.Assistant.Temperature,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
