// Package httpsource implements the RecordSource port for a CSV password
// table published at an HTTP(S) URL.
package httpsource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gregjones/httpcache"

	"github.com/ericfisherdev/guestwifi/internal/adapter/driven/csvsource"
	"github.com/ericfisherdev/guestwifi/internal/domain/model"
	"github.com/ericfisherdev/guestwifi/internal/domain/port/driven"
)

// maxTableBytes caps the size of a downloaded password table.
const maxTableBytes = 1 << 20

const msgUnreachable = "Unable to load password file. Please contact staff for assistance."

// Compile-time interface satisfaction check.
var _ driven.RecordSource = (*Source)(nil)

// Source fetches the password table over HTTP. Freshness comes from the
// Last-Modified header of a HEAD request; downloads go through an in-memory
// httpcache transport so unchanged tables are revalidated with ETags.
// Downloads always revalidate, even when the server grants a max-age, so a
// new Last-Modified stamp is never paired with a locally cached body.
type Source struct {
	client *http.Client
	url    string
	now    func() time.Time
}

// NewSource creates a Source for url using the default transport.
func NewSource(url string, timeout time.Duration) *Source {
	return NewSourceWithTransport(http.DefaultTransport, url, timeout)
}

// NewSourceWithTransport creates a Source whose cache transport wraps base.
// Tests use it to route requests to an httptest server.
func NewSourceWithTransport(base http.RoundTripper, url string, timeout time.Duration) *Source {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	cacheTransport.Transport = base

	return &Source{
		client: &http.Client{Transport: cacheTransport, Timeout: timeout},
		url:    url,
		now:    time.Now,
	}
}

// Resolve issues a HEAD request and uses Last-Modified as the freshness
// stamp. Without the header every call yields a new stamp, so the table is
// re-downloaded (conditionally) on each lookup.
func (s *Source) Resolve(ctx context.Context) (model.SourceInfo, error) {
	resp, err := s.do(ctx, http.MethodHead)
	if err != nil {
		return model.SourceInfo{}, err
	}
	_ = resp.Body.Close()

	modifiedAt := s.now()
	if lm := resp.Header.Get("Last-Modified"); lm != "" {
		if t, err := http.ParseTime(lm); err == nil {
			modifiedAt = t
		}
	}

	return model.SourceInfo{Identifier: s.url, ModifiedAt: modifiedAt}, nil
}

// Load downloads and parses the table.
func (s *Source) Load(ctx context.Context, _ model.SourceInfo) (model.ParseResult, error) {
	resp, err := s.do(ctx, http.MethodGet)
	if err != nil {
		return model.ParseResult{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxTableBytes+1))
	if err != nil {
		return model.ParseResult{}, model.NewSourceError(model.ErrorStateConfigurationError, msgUnreachable,
			fmt.Errorf("read %s: %w", s.url, err))
	}
	if len(data) > maxTableBytes {
		return model.ParseResult{}, model.NewSourceError(model.ErrorStateInvalidCSVFormat, "",
			fmt.Errorf("%s exceeds %d bytes", s.url, maxTableBytes))
	}

	return csvsource.Parse(data)
}

func (s *Source) do(ctx context.Context, method string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, s.url, nil)
	if err != nil {
		return nil, model.NewSourceError(model.ErrorStateConfigurationError, "", fmt.Errorf("build request: %w", err))
	}
	// max-age=0 marks any cached copy stale; httpcache then sends a
	// conditional request instead of answering locally.
	req.Header.Set("Cache-Control", "max-age=0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, model.NewSourceError(model.ErrorStateConfigurationError, msgUnreachable,
			fmt.Errorf("%s %s: %w", method, s.url, err))
	}

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		_ = resp.Body.Close()
		return nil, model.NewSourceError(model.ErrorStateFileNotFound, "",
			fmt.Errorf("%s %s: status %d", method, s.url, resp.StatusCode))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		_ = resp.Body.Close()
		return nil, model.NewSourceError(model.ErrorStateConfigurationError, msgUnreachable,
			fmt.Errorf("%s %s: status %d", method, s.url, resp.StatusCode))
	}

	return resp, nil
}
