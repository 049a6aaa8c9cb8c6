package main

import (
	"context"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// createBackoffPolicy creates a configured exponential backoff policy for
// retrying transient plex.tv errors
func createBackoffPolicy() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = BackoffInitialInterval
	b.MaxInterval = BackoffMaxInterval
	b.MaxElapsedTime = BackoffMaxElapsedTime
	b.Multiplier = BackoffMultiplier
	b.RandomizationFactor = BackoffRandomizationFactor
	return b
}

// isRateLimitError checks if the error should trigger a retry. plex.tv
// surfaces throttling as 429 and intermittent 5xx from the provider backends.
func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "too many requests") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "503") ||
		strings.Contains(errStr, "502")
}

// retryWithBackoff wraps an operation with exponential backoff for retrying
// transient errors. Non-transient errors fail immediately.
func retryWithBackoff(ctx context.Context, operation func() error, operationName string) error {
	b := createBackoffPolicy()

	var attemptCount int
	retryableOperation := func() error {
		err := operation()
		if err != nil && !isRateLimitError(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.RetryNotify(
		retryableOperation,
		backoff.WithContext(b, ctx),
		func(err error, duration time.Duration) {
			if isRateLimitError(err) {
				attemptCount++
				LogWarn(ctx, "Retry attempt %d for %s (waiting %v)...", attemptCount, operationName, duration)
			}
		},
	)
}
