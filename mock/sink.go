package mock

import (
	"context"

	"github.com/fwojciec/policyscan"
)

var _ policyscan.Sink = (*Sink)(nil)

// Sink is a mock implementation of policyscan.Sink.
type Sink struct {
	PutFn func(ctx context.Context, collection, item string, data []byte, contentType string) (string, error)
}

func (s *Sink) Put(ctx context.Context, collection, item string, data []byte, contentType string) (string, error) {
	return s.PutFn(ctx, collection, item, data, contentType)
}
