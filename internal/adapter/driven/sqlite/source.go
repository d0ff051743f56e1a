package sqlite

import (
	"context"
	"fmt"

	"github.com/ericfisherdev/guestwifi/internal/domain/model"
	"github.com/ericfisherdev/guestwifi/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.RecordSource = (*Source)(nil)

// Source exposes a RecordStore as a read-only RecordSource. The table's
// revision stamp stands in for a file modification time.
type Source struct {
	store      driven.RecordStore
	identifier string
}

// NewSource creates a Source. identifier names the database in logs and
// cache keys.
func NewSource(store driven.RecordStore, identifier string) *Source {
	return &Source{store: store, identifier: identifier}
}

// Resolve reports the table's revision stamp. A table that was never
// imported is reported as not found.
func (s *Source) Resolve(ctx context.Context) (model.SourceInfo, error) {
	modifiedAt, ok, err := s.store.ModifiedAt(ctx)
	if err != nil {
		return model.SourceInfo{}, model.NewSourceError(model.ErrorStateConfigurationError, "", err)
	}
	if !ok {
		return model.SourceInfo{}, model.NewSourceError(model.ErrorStateFileNotFound, "",
			fmt.Errorf("password table in %s has not been imported", s.identifier))
	}
	return model.SourceInfo{Identifier: s.identifier, ModifiedAt: modifiedAt}, nil
}

// Load reads the stored rows and applies the same row validation as the CSV
// parser, since the table may have been edited outside the import command.
func (s *Source) Load(ctx context.Context, _ model.SourceInfo) (model.ParseResult, error) {
	stored, err := s.store.ListAll(ctx)
	if err != nil {
		return model.ParseResult{}, model.NewSourceError(model.ErrorStateConfigurationError,
			"Unable to read password file. Please contact staff for assistance.", err)
	}

	var result model.ParseResult
	for i, rec := range stored {
		switch {
		case rec.Date == "" || rec.Password == "":
			result.Warnings = append(result.Warnings, fmt.Sprintf("Row %d: Missing date or password", i+1))
		case !model.IsValidDate(rec.Date):
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Row %d: Invalid date format %q (expected DD/MM/YYYY)", i+1, rec.Date))
		default:
			result.Records = append(result.Records, rec)
		}
	}

	if len(result.Records) == 0 {
		return model.ParseResult{}, model.NewSourceError(model.ErrorStateInvalidCSVFormat,
			"No valid password entries found in file. Please contact staff for assistance.",
			fmt.Errorf("%s: no valid rows (%d stored)", s.identifier, len(stored)))
	}

	return result, nil
}
