package sqlite

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRunMigrations_FreshDatabase(t *testing.T) {
	db := openBareTestDB(t)
	var buf bytes.Buffer

	require.NoError(t, RunMigrations(db.Writer, bufferLogger(&buf)))

	assert.Contains(t, buf.String(), `"msg":"password schema migrated"`)
	assert.Contains(t, buf.String(), `"from":0`)
	assert.Contains(t, buf.String(), `"to":1`)

	for _, table := range []string{"password_records", "password_table_meta"} {
		var name string
		err := db.Reader.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestRunMigrations_RerunIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	var buf bytes.Buffer

	require.NoError(t, RunMigrations(db.Writer, bufferLogger(&buf)))

	assert.Contains(t, buf.String(), `"msg":"password schema up to date"`)
	assert.Contains(t, buf.String(), `"version":1`)
	assert.NotContains(t, buf.String(), "password schema migrated")
}

func TestRunMigrations_DirtyDatabaseIsRejected(t *testing.T) {
	db := setupTestDB(t)
	_, err := db.Writer.Exec(`UPDATE schema_migrations SET dirty = 1`)
	require.NoError(t, err)

	err = RunMigrations(db.Writer, slog.New(slog.DiscardHandler))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "dirty at version 1")
}
