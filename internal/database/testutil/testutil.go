// Package testutil opens throwaway stores for package tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/devanap/fabrismart-full/internal/config"
	"github.com/devanap/fabrismart-full/internal/database"
	"github.com/rs/zerolog"
)

// Config returns the default config pointed at a fresh SQLite file.
func Config(tb testing.TB) *config.Config {
	tb.Helper()

	cfg := config.DefaultConfig()
	cfg.Observability.ServiceName = config.ServiceName
	cfg.Observability.Environment = "test"
	cfg.Database.Path = filepath.Join(tb.TempDir(), "fabrismart.db")
	cfg.Backup.Dir = filepath.Join(tb.TempDir(), "backups")
	return cfg
}

// Logger discards everything.
func Logger(tb testing.TB) *zerolog.Logger {
	tb.Helper()
	logger := zerolog.Nop()
	return &logger
}

// DB opens a new SQLite store with the schema in place. It is closed when
// the test ends.
func DB(tb testing.TB) *database.Database {
	tb.Helper()
	return DBWithConfig(tb, Config(tb))
}

// DBWithConfig is DB for a caller-provided config.
func DBWithConfig(tb testing.TB, cfg *config.Config) *database.Database {
	tb.Helper()

	db, err := database.New(cfg, Logger(tb), nil)
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}
	tb.Cleanup(func() { db.Close() })

	if err := db.EnsureSchema(context.Background()); err != nil {
		tb.Fatalf("failed to ensure schema: %v", err)
	}
	return db
}
