package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/devanap/fabrismart-full/internal/config"
	"github.com/devanap/fabrismart-full/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
)

// Embed all SQL files under migrations/ at compile time, so the binary
// carries its schema and needs nothing on disk besides the store itself.
//
//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrations embed.FS

// EnsureSchema creates the products and employees tables when they do not
// exist yet. It is idempotent and runs on every start.
func (db *Database) EnsureSchema(ctx context.Context) error {
	if db.dialect == DialectPostgres {
		return Migrate(ctx, db.log, db.cfg)
	}
	return db.ensureSQLiteSchema(ctx)
}

// ensureSQLiteSchema executes every embedded sqlite file in name order.
// Each file only uses CREATE ... IF NOT EXISTS, so re-running is a no-op.
func (db *Database) ensureSQLiteSchema(ctx context.Context) error {
	files, err := fs.Glob(migrations, "migrations/sqlite/*.sql")
	if err != nil {
		return fmt.Errorf("listing sqlite migrations: %w", err)
	}
	sort.Strings(files)

	conn, err := db.DB.Conn(ctx)
	if err != nil {
		return sqlerr.Classify(err)
	}
	defer conn.Close()

	for _, name := range files {
		script, err := migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := conn.ExecContext(ctx, string(script)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, sqlerr.Classify(err))
		}
	}

	db.log.Info().Int("files", len(files)).Msg("database schema ensured")
	return nil
}

// Migrate runs the postgres migrations using jackc/tern.
//
// Behavior:
//   - Connect using pgx (single connection, not a pool)
//   - Create tern migrator and load embedded migrations
//   - Run migrations to latest
//   - Log whether it was already up-to-date or migrated
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg config.DatabaseConfig) error {
	conn, err := pgx.Connect(ctx, postgresDSN(cfg))
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	// Applied versions are tracked in the schema_version table.
	m, err := tern.NewMigrator(ctx, conn, "schema_version")
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations/postgres")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return sqlerr.Classify(err)
	}

	if from == int32(len(m.Migrations)) {
		logger.Info().Msgf("database schema up to date, version %d", len(m.Migrations))
	} else {
		logger.Info().Msgf("migrated database schema, from %d to %d", from, len(m.Migrations))
	}
	return nil
}
