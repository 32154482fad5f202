package oracle

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fantasygrid/trade-api/internal/models"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

// retryingOracle wraps an Oracle with retry/backoff behavior.
type retryingOracle struct {
	inner       Oracle
	logger      *zap.SugaredLogger
	maxAttempts int
	backoff     time.Duration
}

// NewRetrying wraps the given oracle with retries. Non-positive
// maxAttempts/backoff fall back to defaults.
func NewRetrying(inner Oracle, logger *zap.Logger, maxAttempts int, backoff time.Duration) Oracle {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingOracle{
		inner:       inner,
		logger:      logger.Sugar(),
		maxAttempts: maxAttempts,
		backoff:     backoff,
	}
}

func (r *retryingOracle) PlayerValue(ctx context.Context, p models.Player) (float64, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		value, err := r.inner.PlayerValue(ctx, p)
		if err == nil {
			return value, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logger.Warnw("Oracle lookup retry",
			"player", p.Name,
			"attempt", attempt,
			"maxAttempts", r.maxAttempts,
			"error", err,
		)

		// backoff with context awareness
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(time.Duration(attempt) * r.backoff):
		}
	}

	return 0, lastErr
}
