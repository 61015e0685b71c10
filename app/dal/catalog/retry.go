package catalog

import (
	"context"
	"math/rand"
	"time"
)

// RetryConf bounds the retry loop around catalog round trips. It is read once
// at startup and immutable afterwards.
type RetryConf struct {
	MaxRetries int           `json:",default=3"`
	BaseDelay  time.Duration `json:",default=500ms"`
	MaxDelay   time.Duration `json:",default=5s"`
}

const maxJitter = 300 * time.Millisecond

// backoffDelay is the pure half of the retry policy: BaseDelay*2^(attempt-1)
// capped at MaxDelay, before jitter. attempt is 1-based.
func (c RetryConf) backoffDelay(attempt int) time.Duration {
	delay := c.BaseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= c.MaxDelay {
			return c.MaxDelay
		}
	}
	if delay > c.MaxDelay {
		return c.MaxDelay
	}
	return delay
}

func jitter() time.Duration {
	return time.Duration(rand.Int63n(int64(maxJitter)))
}

// waitFor blocks for d or until ctx is done, whichever comes first.
func waitFor(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
