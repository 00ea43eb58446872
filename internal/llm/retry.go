package llm

import (
	"context"
	"time"

	"github.com/turiniq/agent-platform/pkg/logging"
)

// RetryPolicy describes the retry-then-fallback behavior shared by the
// live-chat components: a bounded number of attempts with the delay doubling
// after each failure.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultRetryPolicy matches the conversational components: three attempts,
// delays of 1s then 2s between them.
var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 3, BaseDelay: time.Second}

func (p RetryPolicy) normalized() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = DefaultRetryPolicy.MaxAttempts
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = DefaultRetryPolicy.BaseDelay
	}
	return p
}

// Retry runs fn until it succeeds or the policy is exhausted. Any error
// counts as a failed attempt: transient provider errors and malformed model
// output are both retried. The last error is returned on exhaustion.
func Retry[T any](ctx context.Context, policy RetryPolicy, fn func(context.Context) (T, error)) (T, error) {
	policy = policy.normalized()

	var (
		zero    T
		lastErr error
	)
	delay := policy.BaseDelay
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		value, err := fn(ctx)
		if err == nil {
			return value, nil
		}
		lastErr = err
		if attempt == policy.MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return zero, lastErr
}

// RetryWithFallback applies Retry and degrades to the supplied fallback on
// exhaustion instead of surfacing the error. This is the conversational
// failure policy: a bad model never ends the session, it just produces a
// conservative default.
func RetryWithFallback[T any](ctx context.Context, policy RetryPolicy, logger *logging.Logger, op string, fallback T, fn func(context.Context) (T, error)) T {
	if logger == nil {
		logger = logging.Default()
	}
	value, err := Retry(ctx, policy, fn)
	if err != nil {
		logger.Error("llm call exhausted retries, using fallback", "op", op, "error", err)
		return fallback
	}
	return value
}
