package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"
)

const window = time.Minute

// ValkeyLimiter counts requests per key in fixed one-minute windows shared by every replica.
type ValkeyLimiter struct {
	client valkey.Client
	prefix string
	limit  int64
	now    func() time.Time
}

// NewValkeyLimiter constructs a limiter backed by Valkey.
func NewValkeyLimiter(client valkey.Client, prefix string, requestsPerMinute int) *ValkeyLimiter {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &ValkeyLimiter{
		client: client,
		prefix: prefix,
		limit:  int64(requestsPerMinute),
		now:    time.Now,
	}
}

// Allow increments the counter for the current window.
func (l *ValkeyLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowKey := l.windowKey(key)
	count, err := l.client.Do(ctx, l.client.B().Incr().Key(windowKey).Build()).AsInt64()
	if err != nil {
		return false, fmt.Errorf("incr %s: %w", windowKey, err)
	}
	if count == 1 {
		if err := l.client.Do(ctx, l.client.B().Expire().Key(windowKey).Seconds(int64(window/time.Second)).Build()).Error(); err != nil {
			return false, fmt.Errorf("expire %s: %w", windowKey, err)
		}
	}
	return count <= l.limit, nil
}

// Close releases the underlying client.
func (l *ValkeyLimiter) Close() {
	if l.client != nil {
		l.client.Close()
	}
}

func (l *ValkeyLimiter) windowKey(key string) string {
	return fmt.Sprintf("%s:%s:%d", l.prefix, key, l.now().Unix()/int64(window/time.Second))
}

var _ Limiter = (*ValkeyLimiter)(nil)
