package session

import (
	"context"
	"sync"

	"github.com/fwojciec/policyscan"
	"golang.org/x/time/rate"
)

var _ policyscan.Limiter = (*HostLimiter)(nil)

// HostLimiter provides per-host rate limiting using token buckets. It
// replaces the fixed inter-request sleep of the original deployment with an
// explicit pacing policy: concurrent requests to different hosts proceed
// independently while requests to the same host are spaced out.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewHostLimiter creates a new HostLimiter with the specified requests per
// second limit. Each host gets its own limiter with a burst of 1 (no
// bursting allowed).
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the host.
// Returns an error if the context is canceled before the wait completes.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.limiters[host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
