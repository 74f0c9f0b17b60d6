package postgre

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"task-assistant/internal/reminder/repository"
	"task-assistant/pkg/log"
)

type implRepository struct {
	db *pgxpool.Pool
	l  log.Logger
}

// New creates a PostgreSQL-backed reminder Repository.
func New(db *pgxpool.Pool, l log.Logger) repository.Repository {
	if db == nil {
		panic("reminder/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("reminder/repository/postgre.%s", method)
}
