package main

import (
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"
)

// defaultBackoffConfig defines the default exponential backoff settings
var defaultBackoffConfig = ExponentialBackoff{
	InitialInterval: 1 * time.Second,
	MaxInterval:     30 * time.Second,
	Multiplier:      2.0,
}

// BackoffStrategy defines retry delay behavior
type BackoffStrategy interface {
	Duration(attempt int) time.Duration
}

// ExponentialBackoff implements exponential backoff
type ExponentialBackoff struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

func (b *ExponentialBackoff) Duration(attempt int) time.Duration {
	if attempt == 0 {
		return 0
	}
	delay := float64(b.InitialInterval) * math.Pow(b.Multiplier, float64(attempt-1))
	if delay > float64(b.MaxInterval) {
		return b.MaxInterval
	}
	return time.Duration(delay)
}

// shouldRetryStatus determines if a response status code should trigger a retry
func shouldRetryStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests ||
		statusCode == http.StatusRequestTimeout ||
		(statusCode >= 500 && statusCode < 600)
}

// isRetryable determines if an error or response should trigger a retry
func isRetryable(err error, resp *http.Response) bool {
	if err != nil {
		errStr := err.Error()
		return strings.Contains(errStr, "connection refused") ||
			strings.Contains(errStr, "connection reset") ||
			strings.Contains(errStr, "broken pipe")
	}
	return shouldRetryStatus(resp.StatusCode)
}

// cloneRequest creates a copy of an HTTP request, including its body
func cloneRequest(req *http.Request) *http.Request {
	r := req.Clone(req.Context())
	if req.Body != nil && req.Body != http.NoBody {
		body, _ := io.ReadAll(req.Body)
		req.Body.Close()
		r.Body = io.NopCloser(strings.NewReader(string(body)))
		req.Body = io.NopCloser(strings.NewReader(string(body)))
	}
	return r
}

// retryableRoundTripper implements http.RoundTripper with retry logic.
// The Letterboxd list endpoints sit behind a free hosting tier that cold
// starts, so the first request of a run routinely 503s.
type retryableRoundTripper struct {
	underlying http.RoundTripper
	maxRetries int
	backoff    BackoffStrategy
}

// NewRetryableTransport wraps a transport with bounded retry logic.
func NewRetryableTransport(underlying http.RoundTripper, maxRetries int) http.RoundTripper {
	if underlying == nil {
		underlying = http.DefaultTransport
	}
	return &retryableRoundTripper{
		underlying: underlying,
		maxRetries: maxRetries,
		backoff:    &defaultBackoffConfig,
	}
}

// RoundTrip executes a single HTTP transaction, retrying transient failures
// up to maxRetries times with exponential backoff.
func (t *retryableRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= t.maxRetries; attempt++ {
		if attempt > 0 {
			wait := t.backoff.Duration(attempt)
			LogWarn(req.Context(), "[HTTP RETRY] Attempt %d/%d for %s (waiting %v)",
				attempt, t.maxRetries, req.URL, wait)

			select {
			case <-time.After(wait):
			case <-req.Context().Done():
				return nil, req.Context().Err()
			}
		}

		resp, err := t.underlying.RoundTrip(cloneRequest(req))

		if err == nil && !shouldRetryStatus(resp.StatusCode) {
			return resp, nil
		}

		if resp != nil {
			resp.Body.Close()
		}

		if err != nil {
			lastErr = err
		}

		if !isRetryable(err, resp) {
			if err != nil {
				return nil, err
			}
			return resp, nil
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, fmt.Errorf("max retries (%d) exhausted", t.maxRetries)
}
