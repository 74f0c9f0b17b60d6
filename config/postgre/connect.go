package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"

	"task-assistant/config"
	"task-assistant/pkg/log"
)

// Connect opens a pgx pool and verifies it with a ping.
func Connect(ctx context.Context, cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	pgxCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgre.Connect.ParseConfig: %w", err)
	}
	if cfg.MaxConns > 0 {
		pgxCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MaxConnLifetime > 0 {
		pgxCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, fmt.Errorf("postgre.Connect.NewWithConfig: %w", err)
	}

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgre.Connect.Ping: %w", err)
	}

	return pool, nil
}

// Disconnect closes the pool.
func Disconnect(ctx context.Context, l log.Logger, pool *pgxpool.Pool) {
	if pool == nil {
		return
	}
	pool.Close()
	l.Info(ctx, "postgres pool closed")
}

// Migrate applies every pending up migration found under cfg.MigrationsPath.
func Migrate(ctx context.Context, l log.Logger, cfg config.PostgresConfig) error {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return fmt.Errorf("postgre.Migrate.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgre.Migrate.Ping: %w", err)
	}

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("postgre.Migrate.WithInstance: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+filepath.ToSlash(cfg.MigrationsPath), "postgres", driver)
	if err != nil {
		return fmt.Errorf("postgre.Migrate.NewWithDatabaseInstance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("postgre.Migrate.Up: %w", err)
	}

	version, dirty, _ := m.Version()
	l.Infof(ctx, "database migrations applied: version=%d dirty=%t", version, dirty)
	return nil
}
