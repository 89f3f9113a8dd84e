package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/policyscan"
)

// Ensure Sink implements policyscan.Sink.
var _ policyscan.Sink = (*Sink)(nil)

// Sink wraps a policyscan.Sink with put logging.
type Sink struct {
	next   policyscan.Sink
	logger *slog.Logger
}

// NewSink creates a new logging Sink.
func NewSink(next policyscan.Sink, logger *slog.Logger) *Sink {
	return &Sink{next: next, logger: logger}
}

// Put delegates to the wrapped sink, logging the outcome.
func (s *Sink) Put(ctx context.Context, collection, item string, data []byte, contentType string) (string, error) {
	begin := time.Now()
	ref, err := s.next.Put(ctx, collection, item, data, contentType)
	if err != nil {
		s.logger.Warn("sink put failed",
			"collection", collection,
			"item", item,
			"error", err,
		)
		return "", err
	}
	s.logger.Info("sink put",
		"collection", collection,
		"item", item,
		"bytes", len(data),
		"duration", time.Since(begin),
	)
	return ref, nil
}
