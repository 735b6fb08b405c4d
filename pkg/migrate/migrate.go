package migrate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/scoutworks/supplierscout-backend/pkg/config"
)

const DefaultDir = "pkg/migrate/migrations"

// Run executes a goose command against the supplier database.
func Run(ctx context.Context, db *sql.DB, cfg config.DBConfig, dir string, command string, args ...string) error {
	if db == nil {
		return fmt.Errorf("db is required")
	}
	if dir == "" {
		return fmt.Errorf("dir is required")
	}

	dialect := "postgres"
	if cfg.IsSQLite() {
		dialect = "sqlite3"
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.RunContext(ctx, command, db, dir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

// MaybeAutoRun applies pending migrations when auto-migrate is enabled.
func MaybeAutoRun(ctx context.Context, db *sql.DB, cfg config.DBConfig, dir string) error {
	if !cfg.AutoMigrate {
		return nil
	}
	return Run(ctx, db, cfg, dir, "up")
}
