package driven

import (
	"context"

	"github.com/ericfisherdev/guestwifi/internal/domain/model"
)

// RecordSource defines the driven port for the read-only password table.
// Failures are reported as *model.SourceError so the application layer can
// classify them without knowing the backing store.
type RecordSource interface {
	// Resolve locates the active table and reports its freshness stamp
	// without reading its contents. Returns a file-not-found SourceError when
	// no candidate location exists.
	Resolve(ctx context.Context) (model.SourceInfo, error)

	// Load reads and parses the table identified by info.
	Load(ctx context.Context, info model.SourceInfo) (model.ParseResult, error)
}
