package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	loginLimit  = 5
	loginWindow = time.Minute
)

// LoginLimiter throttles login attempts per caller using a fixed window
// counter in Redis. Key format: login:<email>:<ip>
type LoginLimiter struct {
	client *redis.Client
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{client: client}
}

// Allow reports whether another login attempt is permitted for this
// email/address pair within the current window.
func (l *LoginLimiter) Allow(ctx context.Context, email, addr string) (bool, error) {
	key := fmt.Sprintf("login:%s:%s", email, addr)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("login limiter: %w", err)
	}
	if n == 1 {
		// First attempt in the window starts the clock.
		if err := l.client.Expire(ctx, key, loginWindow).Err(); err != nil {
			return false, fmt.Errorf("login limiter: %w", err)
		}
	}

	return n <= loginLimit, nil
}
