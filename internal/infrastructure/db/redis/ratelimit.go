package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// WindowLimiter is a fixed-window request counter shared by every API
// replica that points at the same Redis.
// Key format: ratelimit:<key>:<window_index>
type WindowLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewWindowLimiter allows limit requests per key in each window.
func NewWindowLimiter(client *redis.Client, limit int, window time.Duration) *WindowLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &WindowLimiter{client: client, limit: int64(limit), window: window, now: time.Now}
}

// Allow counts one request against key and reports whether it is within the limit.
func (l *WindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.key(key, l.now())

	pipe := l.client.TxPipeline()
	count := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit %s: %w", key, err)
	}

	return count.Val() <= l.limit, nil
}

func (l *WindowLimiter) key(key string, at time.Time) string {
	return fmt.Sprintf("ratelimit:%s:%d", key, at.UnixNano()/int64(l.window))
}
