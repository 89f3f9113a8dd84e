// Package http provides the HTTP-based implementation of policyscan.Fetcher.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/policyscan"
)

// DefaultFetchTimeout is the default wall-clock bound per fetch.
const DefaultFetchTimeout = 30 * time.Second

// userAgent is the fixed identifying header attached to every request.
// The target sites reject requests without a browser-like user agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Ensure Fetcher implements policyscan.Fetcher at compile time.
var _ policyscan.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documents over HTTP. A single underlying client is
// shared across fetches for connection reuse; no cookies or session state
// persist across targets.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the document at url. Expected network failures come back
// as *policyscan.FetchError; only programmer errors (an unparseable URL)
// return anything else.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, policyscan.Errorf(policyscan.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, classify(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &policyscan.FetchError{
			Kind:       policyscan.FetchNonSuccessStatus,
			URL:        url,
			StatusCode: resp.StatusCode,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(url, err)
	}

	return body, nil
}

// classify maps a transport-level error to a typed FetchError.
func classify(url string, err error) *policyscan.FetchError {
	kind := policyscan.FetchTransportError

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = policyscan.FetchTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = policyscan.FetchTimeout
	}

	return &policyscan.FetchError{
		Kind: kind,
		URL:  url,
		Err:  err,
	}
}
