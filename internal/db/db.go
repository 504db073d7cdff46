// Package db provides SQLite persistence for reelpath.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/backshelf/reelpath/internal/logging"
)

// DB wraps the SQL connection pool used by the repositories.
type DB struct {
	*sql.DB
	logger zerolog.Logger
}

// Open opens (creating if necessary) the database at path and applies
// connection pragmas. The parent directory is created as needed.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	return open(path)
}

// OpenInMemory opens a private in-memory database, used by tests.
func OpenInMemory() (*DB, error) {
	return open(":memory:")
}

func open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single writer keeps modernc's file locking simple.
	conn.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	} {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	return &DB{DB: conn, logger: logging.Component("db")}, nil
}

// MigrateUp applies any schema migrations not yet present. It returns
// the number of migrations applied.
func (d *DB) MigrateUp(ctx context.Context) (int, error) {
	if _, err := d.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TEXT NOT NULL
		)
	`); err != nil {
		return 0, fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied := 0
	for _, m := range migrations {
		var exists int
		err := d.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM schema_migrations WHERE version = ?`, m.version,
		).Scan(&exists)
		if err != nil {
			return applied, fmt.Errorf("failed to check migration %d: %w", m.version, err)
		}
		if exists > 0 {
			continue
		}

		if _, err := d.ExecContext(ctx, m.statement); err != nil {
			return applied, fmt.Errorf("migration %d failed: %w", m.version, err)
		}
		if _, err := d.ExecContext(ctx,
			`INSERT INTO schema_migrations (version, applied_at) VALUES (?, datetime('now'))`, m.version,
		); err != nil {
			return applied, fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}

		d.logger.Debug().Int("version", m.version).Msg("applied migration")
		applied++
	}

	return applied, nil
}

type migration struct {
	version   int
	statement string
}

var migrations = []migration{
	{
		version: 1,
		statement: `
			CREATE TABLE IF NOT EXISTS history (
				id TEXT PRIMARY KEY,
				source_file TEXT NOT NULL,
				rendered_path TEXT NOT NULL,
				template TEXT NOT NULL,
				preset TEXT NOT NULL DEFAULT '',
				created_at TEXT NOT NULL
			)
		`,
	},
	{
		version:   2,
		statement: `CREATE INDEX IF NOT EXISTS idx_history_created_at ON history (created_at)`,
	},
}
