package driven

import (
	"context"
	"time"

	"github.com/ericfisherdev/guestwifi/internal/domain/model"
)

// RecordStore defines the driven port for a database-backed password table.
// The serving process only reads; ReplaceAll is used by operator tooling.
type RecordStore interface {
	// ListAll returns every stored record in insertion order.
	ListAll(ctx context.Context) ([]model.PasswordRecord, error)

	// ModifiedAt returns when the table contents last changed. ok is false
	// when the table has never been populated.
	ModifiedAt(ctx context.Context) (t time.Time, ok bool, err error)

	// ReplaceAll atomically swaps the table contents for records and bumps
	// the modification stamp.
	ReplaceAll(ctx context.Context, records []model.PasswordRecord) error
}
