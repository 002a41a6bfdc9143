// internal/pkg/retry/retry.go
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy bounds how often a remote operation is reattempted. The delay is
// constant between attempts, never exponential.
type Policy struct {
	MaxRetries uint64
	Delay      time.Duration
}

// Default is the budget applied to every remote account call: two extra
// attempts after the first, one second apart.
var Default = Policy{
	MaxRetries: 2,
	Delay:      time.Second,
}

// Do runs op and retries it under the given policy until it succeeds or the
// budget is exhausted. The last error is returned as-is.
func Do[T any](ctx context.Context, p Policy, op func() (T, error)) (T, error) {
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(p.Delay), p.MaxRetries), ctx)
	return backoff.RetryWithData(op, b)
}

// DoErr is Do for operations that only report an error.
func DoErr(ctx context.Context, p Policy, op func() error) error {
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(p.Delay), p.MaxRetries), ctx)
	return backoff.Retry(op, b)
}
