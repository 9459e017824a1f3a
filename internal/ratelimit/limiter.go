package ratelimit

import (
	"fmt"
	"time"

	"github.com/casedesk/case-servicing/pkg/redis"
)

// Limiter is a fixed-window counter backed by redis. All API instances share
// the same counters, so the limit holds across a scaled-out deployment.
type Limiter struct {
	store  redis.RedisAdapter
	limit  int64
	window time.Duration
	now    func() time.Time
}

func New(store redis.RedisAdapter, limit int64, window time.Duration) *Limiter {
	return &Limiter{
		store:  store,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Allow counts one request against the caller's current window and reports
// whether it fits under the limit.
func (l *Limiter) Allow(key string) (bool, error) {
	bucket := l.now().Unix() / int64(l.window.Seconds())
	windowKey := fmt.Sprintf("ratelimit:%s:%d", key, bucket)

	n, err := l.store.Increment(windowKey, 1)
	if err != nil {
		return false, err
	}
	if n == 1 {
		// First hit in the window owns the expiry.
		if err := l.store.Expire(windowKey, l.window); err != nil {
			return false, err
		}
	}
	return n <= l.limit, nil
}
