package postgre

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"task-assistant/internal/preference/repository"
	"task-assistant/pkg/log"
)

type implRepository struct {
	db *pgxpool.Pool
	l  log.Logger
}

// New creates a new PostgreSQL-backed preference Repository.
func New(db *pgxpool.Pool, l log.Logger) repository.Repository {
	if db == nil {
		panic("preference/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("preference/repository/postgre.%s", method)
}
