package mock

import (
	"context"

	"github.com/fwojciec/policyscan"
)

var _ policyscan.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of policyscan.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *Limiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
