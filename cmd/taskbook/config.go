package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite"

	"taskbook/internal/config"
	"taskbook/internal/repository"
	"taskbook/internal/repository/postgres"
	"taskbook/internal/repository/sqlite"
)

// RepositoryFactory creates repository instances based on configuration.
// It owns the connection provider's lifecycle and provisions the schema,
// which the repository itself never does.
type RepositoryFactory struct {
	cfg *config.Config
}

// NewRepositoryFactory creates a new repository factory for the given configuration
func NewRepositoryFactory(cfg *config.Config) *RepositoryFactory {
	return &RepositoryFactory{cfg: cfg}
}

// CreateRepository creates a repository for the configured driver, returning
// it together with a function releasing the underlying connection provider.
func (rf *RepositoryFactory) CreateRepository(ctx context.Context) (repository.TaskRepository, func(), error) {
	switch rf.cfg.Database.Driver {
	case config.DriverPostgres:
		return rf.createPostgresRepository(ctx)
	default:
		return rf.createSQLiteRepository(ctx)
	}
}

func (rf *RepositoryFactory) createSQLiteRepository(ctx context.Context) (repository.TaskRepository, func(), error) {
	if err := os.MkdirAll(rf.cfg.Database.Dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", rf.cfg.GetDatabasePath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if _, err := db.ExecContext(ctx, sqlite.Schema); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to provision schema: %w", err)
	}

	return sqlite.New(db), func() { db.Close() }, nil
}

func (rf *RepositoryFactory) createPostgresRepository(ctx context.Context) (repository.TaskRepository, func(), error) {
	pool, err := pgxpool.New(ctx, rf.cfg.Database.PostgresDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	if _, err := pool.Exec(ctx, postgres.Schema); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to provision schema: %w", err)
	}

	return postgres.New(pool), func() { pool.Close() }, nil
}
