package noaa

import (
	"context"
	"fmt"

	"github.com/couchcryptid/metar-decode-service/internal/metar"
	"golang.org/x/time/rate"
)

// RateLimitedSource wraps a ReportSource with a token-bucket limiter so the
// collector stays under the upstream API's request budget.
type RateLimitedSource struct {
	inner   metar.ReportSource
	limiter *rate.Limiter
}

// NewRateLimitedSource creates a rate-limiting decorator allowing
// requestsPerSecond sustained throughput with a burst of one.
func NewRateLimitedSource(inner metar.ReportSource, requestsPerSecond float64) *RateLimitedSource {
	return &RateLimitedSource{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

func (s *RateLimitedSource) FetchLatest(ctx context.Context, station string) (metar.ReportMessage, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return metar.ReportMessage{}, fmt.Errorf("rate limit wait: %w", err)
	}
	return s.inner.FetchLatest(ctx, station)
}
