package policyscan

import "context"

// Limiter throttles outbound requests per host.
type Limiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, host string) error
}
