package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/guestwifi/internal/domain/model"
)

func TestSource_NotImportedIsFileNotFound(t *testing.T) {
	db := setupTestDB(t)
	src := NewSource(NewPasswordRepo(db), "sqlite:test.db")

	_, err := src.Resolve(context.Background())

	assert.Equal(t, model.ErrorStateFileNotFound, model.ErrorStateOf(err))
}

func TestSource_ResolveAndLoad(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPasswordRepo(db)
	require.NoError(t, repo.ReplaceAll(context.Background(), makeRecords()))
	src := NewSource(repo, "sqlite:test.db")
	ctx := context.Background()

	info, err := src.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sqlite:test.db", info.Identifier)
	assert.False(t, info.ModifiedAt.IsZero())

	result, err := src.Load(ctx, info)
	require.NoError(t, err)
	assert.Equal(t, makeRecords(), result.Records)
	assert.Empty(t, result.Warnings)
}

func TestSource_LoadSkipsHandEditedRows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPasswordRepo(db)
	require.NoError(t, repo.ReplaceAll(context.Background(), []model.PasswordRecord{
		{Date: "01/06/2024", Password: "Good"},
		{Date: "2024-06-02", Password: "Bad"},
		{Date: "03/06/2024", Password: ""},
	}))
	src := NewSource(repo, "sqlite:test.db")

	result, err := src.Load(context.Background(), model.SourceInfo{})

	require.NoError(t, err)
	assert.Equal(t, []model.PasswordRecord{{Date: "01/06/2024", Password: "Good"}}, result.Records)
	assert.Len(t, result.Warnings, 2)
}

func TestSource_LoadAllInvalid(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPasswordRepo(db)
	require.NoError(t, repo.ReplaceAll(context.Background(), []model.PasswordRecord{{Date: "31/02/2024", Password: "x"}}))
	src := NewSource(repo, "sqlite:test.db")

	_, err := src.Load(context.Background(), model.SourceInfo{})

	assert.Equal(t, model.ErrorStateInvalidCSVFormat, model.ErrorStateOf(err))
}
