// internal/pkg/ratelimit/login_limiter.go
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	maxAttempts = 5
	window      = 15 * time.Minute
)

// LoginLimiter throttles credential-guessing per (ip, email) pair using Redis
// counters. With a nil client the limiter is disabled and every attempt is
// allowed, so Redis stays optional at runtime.
type LoginLimiter struct {
	client *redis.Client
}

func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{client: client}
}

// Allow records one attempt and reports whether it may proceed, plus the
// remaining budget.
func (r *LoginLimiter) Allow(ctx context.Context, ip, email string) (bool, int64, error) {
	if r.client == nil {
		return true, maxAttempts, nil
	}

	key := loginKey(ip, email)
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to increment login attempt: %w", err)
	}

	// Set expiration on first attempt
	if count == 1 {
		r.client.Expire(ctx, key, window)
	}

	remaining := int64(maxAttempts) - count
	if remaining < 0 {
		remaining = 0
	}
	return count <= maxAttempts, remaining, nil
}

// Reset clears the attempt counter after a successful login.
func (r *LoginLimiter) Reset(ctx context.Context, ip, email string) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, loginKey(ip, email)).Err()
}

func loginKey(ip, email string) string {
	return fmt.Sprintf("ratelimit:login:%s:%s", ip, email)
}
