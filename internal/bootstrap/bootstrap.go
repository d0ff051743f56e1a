// Package bootstrap builds the shared pieces both binaries wire from
// configuration: the logger, the record source and the password service.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ericfisherdev/guestwifi/internal/adapter/driven/csvsource"
	"github.com/ericfisherdev/guestwifi/internal/adapter/driven/httpsource"
	sqliteadapter "github.com/ericfisherdev/guestwifi/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/guestwifi/internal/application"
	"github.com/ericfisherdev/guestwifi/internal/config"
	"github.com/ericfisherdev/guestwifi/internal/domain/port/driven"
)

// NewLogger creates the slog logger selected by GUESTWIFI_LOG_FORMAT and
// GUESTWIFI_LOG_LEVEL.
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Source is an opened RecordSource together with the resources backing it.
type Source struct {
	driven.RecordSource
	Kind  config.SourceKind
	close func() error
}

// Close releases the database handle of a SQLite source. It is a no-op for
// the other kinds.
func (s *Source) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenSource opens the record source selected by cfg.Source.
func OpenSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Source, error) {
	switch cfg.Source {
	case config.SourceCSV:
		candidates := csvsource.DefaultCandidates(cfg.CSVPath)
		return &Source{
			RecordSource: csvsource.NewSource(csvsource.OSFileSystem{}, candidates),
			Kind:         cfg.Source,
		}, nil

	case config.SourceURL:
		return &Source{
			RecordSource: httpsource.NewSource(cfg.SourceURL, cfg.FetchTimeout),
			Kind:         cfg.Source,
		}, nil

	case config.SourceSQLite:
		repo, closeDB, err := OpenStore(ctx, cfg.DBPath, logger)
		if err != nil {
			return nil, err
		}
		return &Source{
			RecordSource: sqliteadapter.NewSource(repo, cfg.DBPath),
			Kind:         cfg.Source,
			close:        closeDB,
		}, nil

	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Source)
	}
}

// OpenStore opens the SQLite database at dbPath, applies migrations and
// returns the password table repository with a function closing the database.
func OpenStore(ctx context.Context, dbPath string, logger *slog.Logger) (*sqliteadapter.PasswordRepo, func() error, error) {
	db, err := sqliteadapter.NewDB(ctx, dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database %s: %w", dbPath, err)
	}

	if err := sqliteadapter.RunMigrations(db.Writer, logger); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return sqliteadapter.NewPasswordRepo(db), db.Close, nil
}

// NewPasswordService puts a RecordCache in front of src and builds the
// service resolving passwords in the configured time zone. metrics may be nil.
func NewPasswordService(
	cfg *config.Config,
	src *Source,
	metrics driven.MetricsRecorder,
	logger *slog.Logger,
) *application.PasswordService {
	records := application.NewRecordCache(src, string(src.Kind), metrics, logger)
	calendar := application.NewCalendar(cfg.Location)
	return application.NewPasswordService(records, calendar, cfg.Network(), cfg.ShowYesterday, metrics, logger)
}
