package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"task-assistant/config"
	assistantUC "task-assistant/internal/assistant/usecase"
	"task-assistant/pkg/log"
	"task-assistant/pkg/scope"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Infrastructure
	postgresDB   *pgxpool.Pool
	scopeManager scope.Manager
	rateLimit    config.RateLimitConfig

	// Assistant domain
	llm             assistantUC.Generator
	assistantConfig assistantUC.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	PostgresDB   *pgxpool.Pool
	ScopeManager scope.Manager
	RateLimit    config.RateLimitConfig

	LLM             assistantUC.Generator
	AssistantConfig assistantUC.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		postgresDB:      cfg.PostgresDB,
		scopeManager:    cfg.ScopeManager,
		rateLimit:       cfg.RateLimit,
		llm:             cfg.LLM,
		assistantConfig: cfg.AssistantConfig,
	}

	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres pool is required")
	}
	if srv.scopeManager == nil {
		return errors.New("scope manager is required")
	}
	if srv.llm == nil {
		return errors.New("llm is required")
	}
	return nil
}
