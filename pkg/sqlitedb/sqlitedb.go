package sqlitedb

import (
	"context"
	"embed"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

type Config struct {
	Path string `envconfig:"DB_PATH" default:"bookshelf.db"`
}

// NewSqliteDB opens (creating if needed) the sqlite database, enables foreign
// keys and WAL, and applies embedded goose migrations.
func NewSqliteDB(ctx context.Context, cfg *Config, migrationFiles embed.FS) (*sqlx.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "ensure data dir")
		}
	}

	db, err := sqlx.Open("sqlite3", cfg.Path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	// a single pooled conn avoids SQLITE_BUSY on concurrent writers and keeps
	// :memory: databases coherent across the pool
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close() //nolint:errcheck
		return nil, errors.Wrap(err, "ping sqlite")
	}

	goose.SetBaseFS(migrationFiles)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close() //nolint:errcheck
		return nil, err
	}
	if err := goose.Up(db.DB, "."); err != nil {
		_ = db.Close() //nolint:errcheck
		return nil, errors.Wrap(err, "apply migrations")
	}
	return db, nil
}
