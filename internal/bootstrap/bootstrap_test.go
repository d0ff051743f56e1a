package bootstrap_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/guestwifi/internal/bootstrap"
	"github.com/ericfisherdev/guestwifi/internal/config"
	"github.com/ericfisherdev/guestwifi/internal/domain/model"
)

var discard = slog.New(slog.DiscardHandler)

func baseConfig() *config.Config {
	return &config.Config{
		NetworkName:  "Bloom Guest",
		Source:       config.SourceCSV,
		Location:     time.UTC,
		Security:     model.WiFiSecurityWPA,
		LogLevel:     slog.LevelInfo,
		LogFormat:    config.LogFormatText,
		FetchTimeout: time.Second,
	}
}

func TestNewLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	cfg := baseConfig()
	cfg.LogFormat = config.LogFormatJSON

	bootstrap.NewLogger(cfg, &buf).Info("hello", "key", "value")

	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"key":"value"`)
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	cfg := baseConfig()
	cfg.LogLevel = slog.LevelWarn

	logger := bootstrap.NewLogger(cfg, &buf)
	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "msg=kept")
}

func TestOpenSource_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wifi.csv")
	require.NoError(t, os.WriteFile(path, []byte("Date,Password\n01/06/2024,Tulip\n"), 0o600))

	cfg := baseConfig()
	cfg.CSVPath = path

	src, err := bootstrap.OpenSource(context.Background(), cfg, discard)
	require.NoError(t, err)
	defer src.Close()

	info, err := src.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, path, info.Identifier)

	result, err := src.Load(context.Background(), info)
	require.NoError(t, err)
	assert.Len(t, result.Records, 1)
}

func TestOpenSource_URL(t *testing.T) {
	cfg := baseConfig()
	cfg.Source = config.SourceURL
	cfg.SourceURL = "http://127.0.0.1:1/wifi.csv"

	src, err := bootstrap.OpenSource(context.Background(), cfg, discard)

	require.NoError(t, err)
	assert.Equal(t, config.SourceURL, src.Kind)
	assert.NoError(t, src.Close())
}

func TestOpenSource_SQLiteAfterImport(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "guestwifi.db")

	cfg := baseConfig()
	cfg.Source = config.SourceSQLite
	cfg.DBPath = dbPath

	src, err := bootstrap.OpenSource(ctx, cfg, discard)
	require.NoError(t, err)
	defer src.Close()

	_, err = src.Resolve(ctx)
	assert.Equal(t, model.ErrorStateFileNotFound, model.ErrorStateOf(err))

	store, closeStore, err := bootstrap.OpenStore(ctx, dbPath, discard)
	require.NoError(t, err)
	require.NoError(t, store.ReplaceAll(ctx, []model.PasswordRecord{{Date: "01/06/2024", Password: "Tulip"}}))
	require.NoError(t, closeStore())

	info, err := src.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, dbPath, info.Identifier)

	result, err := src.Load(ctx, info)
	require.NoError(t, err)
	assert.Equal(t, []model.PasswordRecord{{Date: "01/06/2024", Password: "Tulip"}}, result.Records)
}

func TestOpenSource_UnknownKind(t *testing.T) {
	cfg := baseConfig()
	cfg.Source = "ftp"

	_, err := bootstrap.OpenSource(context.Background(), cfg, discard)

	require.Error(t, err)
}

func TestNewPasswordService(t *testing.T) {
	today := model.FormatDate(time.Now().In(time.UTC))
	path := filepath.Join(t.TempDir(), "wifi.csv")
	require.NoError(t, os.WriteFile(path, []byte("Date,Password\n"+today+",Tulip\n"), 0o600))

	cfg := baseConfig()
	cfg.CSVPath = path
	src, err := bootstrap.OpenSource(context.Background(), cfg, discard)
	require.NoError(t, err)

	svc := bootstrap.NewPasswordService(cfg, src, nil, slog.New(slog.DiscardHandler))
	result := svc.CurrentPassword(context.Background())

	assert.Equal(t, "Tulip", result.Password)
	assert.Equal(t, "Bloom Guest", result.NetworkName)
	assert.Equal(t, cfg.Network(), svc.Network())
}
