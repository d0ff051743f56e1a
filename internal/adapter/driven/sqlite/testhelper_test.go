package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestDB opens a migrated, named shared in-memory database. The name is
// derived from t.Name() so parallel tests never share a table.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db := openBareTestDB(t)
	require.NoError(t, RunMigrations(db.Writer, slog.New(slog.DiscardHandler)), "run migrations")

	return db
}

// openBareTestDB opens the same kind of database as setupTestDB without
// applying any migration.
func openBareTestDB(t *testing.T) *DB {
	t.Helper()

	name := url.PathEscape(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&%s", name, basePragmas)

	db, err := openDSN(context.Background(), dsn, "memory:"+name)
	require.NoError(t, err, "open test db")
	t.Cleanup(func() { _ = db.Close() })

	return db
}
