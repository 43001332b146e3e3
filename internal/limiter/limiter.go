// limiter/limiter.go
package limiter

import (
	"context"

	"golang.org/x/time/rate"
)

// DefaultBurst is used when a non-positive burst is requested.
const DefaultBurst = 2

// New returns a limiter allowing rps requests per second. A non-positive rps
// disables limiting and returns nil.
func New(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	if burst < 1 {
		burst = DefaultBurst
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// Wait blocks until l allows a request. A nil limiter never blocks.
func Wait(ctx context.Context, l *rate.Limiter) error {
	if l == nil {
		return nil
	}
	return l.Wait(ctx)
}
