package driven

import "github.com/ericfisherdev/guestwifi/internal/domain/model"

// MetricsRecorder receives operational counters from the application layer.
type MetricsRecorder interface {
	CacheHit(source string)
	CacheMiss(source string)
	SourceRead(source string)
	ParseWarnings(source string, n int)
	Lookup(state model.ErrorState)
}
