package fetcher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FlashpointProject/FlashpointExtensionIndex/internal/domain"
)

func fastRetrier(maxRetries int) *Retrier {
	return NewRetrier(RetrierOptions{
		MaxRetries:      maxRetries,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		Multiplier:      1.5,
	})
}

// TestRetrier_Retry tests retry behavior
func TestRetrier_Retry(t *testing.T) {
	t.Run("succeeds first try", func(t *testing.T) {
		calls := 0
		err := fastRetrier(3).Retry(context.Background(), func() error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries retryable errors", func(t *testing.T) {
		calls := 0
		err := fastRetrier(3).Retry(context.Background(), func() error {
			calls++
			if calls < 3 {
				return &domain.RetryableError{Err: errors.New("transient")}
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on permanent errors", func(t *testing.T) {
		calls := 0
		permanent := errors.New("permanent")
		err := fastRetrier(3).Retry(context.Background(), func() error {
			calls++
			return permanent
		})
		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := fastRetrier(2).Retry(context.Background(), func() error {
			calls++
			return &domain.RetryableError{Err: errors.New("transient")}
		})
		require.Error(t, err)
		assert.Equal(t, 3, calls) // initial + 2 retries
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := fastRetrier(3).Retry(ctx, func() error {
			return &domain.RetryableError{Err: errors.New("transient")}
		})
		require.Error(t, err)
	})
}

// TestNewRetrier tests option defaulting
func TestNewRetrier(t *testing.T) {
	r := NewRetrier(RetrierOptions{})
	assert.Equal(t, 0, r.maxRetries)
	assert.Equal(t, 1*time.Second, r.initialInterval)
	assert.Equal(t, 2.0, r.multiplier)
}

// TestShouldRetryStatus tests status code classification
func TestShouldRetryStatus(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{502, true},
		{503, true},
		{504, true},
		{200, false},
		{404, false},
		{500, false},
		{429, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ShouldRetryStatus(tt.status), "status %d", tt.status)
	}
}
