// Package asset fetches the dashboard's header animation descriptor.
package asset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pgEdge/pgedge-agrigen/internal/logging"
)

// DefaultURL is the farming animation shown next to the dashboard title.
const DefaultURL = "https://assets5.lottiefiles.com/packages/lf20_m6cu9zob.json"

// maxBody caps how much of the descriptor is read.
const maxBody = 8 << 20

// Fetcher downloads the animation descriptor with a single GET.
type Fetcher struct {
	url        string
	httpClient *http.Client
}

// NewFetcher creates a fetcher for url with the given request timeout.
func NewFetcher(url string, timeout time.Duration) *Fetcher {
	if url == "" {
		url = DefaultURL
	}
	return &Fetcher{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch performs the request. A non-200 status or a body that is not a
// JSON value is reported as an error.
func (f *Fetcher) Fetch(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("asset request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("asset unavailable: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("read asset: %w", err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("asset is not valid JSON")
	}
	return json.RawMessage(body), nil
}

// Load fetches the descriptor and degrades to "no asset" on any failure.
// The second return value reports whether an asset is available.
func (f *Fetcher) Load(ctx context.Context) (json.RawMessage, bool) {
	body, err := f.Fetch(ctx)
	if err != nil {
		logging.Warn().
			Err(err).
			Str("url", f.url).
			Msg("Animation asset unavailable, continuing without it")
		return nil, false
	}
	return body, true
}
