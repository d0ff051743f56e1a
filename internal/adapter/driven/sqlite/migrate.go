package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// SchemaVersion is the migration that creates password_records and
// password_table_meta. RunMigrations refuses to hand out a database below it.
const SchemaVersion uint = 1

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations brings the password table schema up to date and logs the
// resulting version. A database left dirty by an interrupted migration is
// reported instead of being retried.
func RunMigrations(db *sql.DB, logger *slog.Logger) error {
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	dbDriver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("create migration db driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite", dbDriver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	before, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		before = 0
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case dirty:
		return fmt.Errorf("password schema is dirty at version %d; repair it with the migrate CLI", before)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}

	after, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if after < SchemaVersion {
		return fmt.Errorf("password schema at version %d, need %d", after, SchemaVersion)
	}

	if after != before {
		logger.Info("password schema migrated", "from", before, "to", after)
	} else {
		logger.Debug("password schema up to date", "version", after)
	}

	return nil
}
