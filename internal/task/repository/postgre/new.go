package postgre

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"task-assistant/internal/task/repository"
	"task-assistant/pkg/log"
)

type implRepository struct {
	db *pgxpool.Pool
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the task domain.
func New(db *pgxpool.Pool, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/postgre.%s", method)
}
