package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fastConfig(maxRetries int) Config {
	return Config{MaxRetries: maxRetries, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 2}
}

func TestRetrier_SucceedsAfterFailures(t *testing.T) {
	r := New(fastConfig(3), nil)
	calls := 0

	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("503")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetrier_Exhausted(t *testing.T) {
	r := New(fastConfig(2), nil)
	cause := errors.New("connection refused")
	calls := 0

	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return cause
	})

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "retry limit exceeded after 3 attempts")
	assert.Equal(t, 3, calls)
}

func TestRetrier_NonRetryableStopsImmediately(t *testing.T) {
	cfg := fastConfig(5)
	permanent := errors.New("400 bad request")
	cfg.IsRetryable = func(err error) bool { return !errors.Is(err, permanent) }
	r := New(cfg, nil)
	calls := 0

	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return permanent
	})

	assert.Equal(t, permanent, err)
	assert.Equal(t, 1, calls)
}

func TestRetrier_ContextCancelled(t *testing.T) {
	r := New(Config{MaxRetries: 5, BaseDelay: time.Second, Multiplier: 2}, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := r.Execute(ctx, func(ctx context.Context) error {
		return errors.New("timeout")
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRetrier_DelayCapped(t *testing.T) {
	r := New(Config{BaseDelay: 100 * time.Millisecond, MaxDelay: 300 * time.Millisecond, Multiplier: 2}, nil)

	assert.Equal(t, 100*time.Millisecond, r.delay(0))
	assert.Equal(t, 200*time.Millisecond, r.delay(1))
	assert.Equal(t, 300*time.Millisecond, r.delay(4))
}
