package oracle

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/fantasygrid/trade-api/internal/models"
)

// rateLimitedOracle throttles lookups so a burst of roster evaluations
// cannot hammer the upstream API.
type rateLimitedOracle struct {
	inner   Oracle
	limiter *rate.Limiter
}

// NewRateLimited wraps the given oracle with a token-bucket limiter of
// perSecond requests and the given burst.
func NewRateLimited(inner Oracle, perSecond float64, burst int) Oracle {
	if perSecond <= 0 {
		perSecond = 10
	}
	if burst <= 0 {
		burst = int(perSecond)
		if burst < 1 {
			burst = 1
		}
	}
	return &rateLimitedOracle{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

func (r *rateLimitedOracle) PlayerValue(ctx context.Context, p models.Player) (float64, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return 0, err
	}
	return r.inner.PlayerValue(ctx, p)
}
