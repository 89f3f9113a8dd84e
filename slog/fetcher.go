// Package slog provides logging decorators for policyscan interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/policyscan"
)

// Ensure Fetcher implements policyscan.Fetcher.
var _ policyscan.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a policyscan.Fetcher with request logging.
type Fetcher struct {
	next   policyscan.Fetcher
	logger *slog.Logger
}

// NewFetcher creates a new logging Fetcher.
func NewFetcher(next policyscan.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher, logging the outcome.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	begin := time.Now()
	body, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Warn("fetch failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	f.logger.Info("fetch",
		"url", url,
		"bytes", len(body),
		"duration", time.Since(begin),
	)
	return body, nil
}
