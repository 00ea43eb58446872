package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turiniq/agent-platform/pkg/logging"
)

func fastPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond}
}

func TestRetrySucceedsFirstAttempt(t *testing.T) {
	calls := 0
	value, err := Retry(context.Background(), fastPolicy(), func(context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", value)
	assert.Equal(t, 1, calls)
}

func TestRetryRecoversAfterTransientFailures(t *testing.T) {
	calls := 0
	value, err := Retry(context.Background(), fastPolicy(), func(context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", ErrTransient
		}
		return "recovered", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "recovered", value)
	assert.Equal(t, 3, calls)
}

func TestRetryExhaustionReturnsLastError(t *testing.T) {
	boom := errors.New("still broken")
	calls := 0
	_, err := Retry(context.Background(), fastPolicy(), func(context.Context) (int, error) {
		calls++
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestRetryStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := Retry(ctx, RetryPolicy{MaxAttempts: 3, BaseDelay: time.Minute}, func(context.Context) (int, error) {
		calls++
		return 0, ErrTransient
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetryWithFallback(t *testing.T) {
	logger := logging.New("error")

	got := RetryWithFallback(context.Background(), fastPolicy(), logger, "classify", "fallback", func(context.Context) (string, error) {
		return "", ErrTransient
	})
	assert.Equal(t, "fallback", got)

	got = RetryWithFallback(context.Background(), fastPolicy(), logger, "classify", "fallback", func(context.Context) (string, error) {
		return "model says", nil
	})
	assert.Equal(t, "model says", got)
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(ErrTransient))
	wrapped := errors.Join(errors.New("outer"), ErrTransient)
	assert.True(t, IsTransient(wrapped))
	assert.False(t, IsTransient(errors.New("other")))
}
