package orchestrator

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"github.com/evolvedtroglodyte/therabridge/pkg/config"
)

// backoffDelay computes the wait before the next attempt. A server-provided
// retry_after hint wins over the exponential schedule; both are capped.
func backoffDelay(cfg *config.RetryConfig, attempt int, hint time.Duration) time.Duration {
	if hint > 0 {
		if hint > cfg.MaxBackoff {
			return cfg.MaxBackoff
		}
		return hint
	}

	d := float64(cfg.InitialBackoff) * math.Pow(cfg.BackoffMultiplier, float64(attempt-1))
	if d > float64(cfg.MaxBackoff) {
		d = float64(cfg.MaxBackoff)
	}
	if cfg.JitterFraction > 0 {
		// Range: d * [1-jitter, 1+jitter]
		d *= 1 + (rand.Float64()*2-1)*cfg.JitterFraction
	}
	if d < 0 {
		return 0
	}
	if d > float64(cfg.MaxBackoff) {
		return cfg.MaxBackoff
	}
	return time.Duration(d)
}

// sleep waits for d or until the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
