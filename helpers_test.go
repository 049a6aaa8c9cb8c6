package main

import (
	"net/http"
	"testing"
	"time"
)

// setFastBackoff shrinks the retry backoff of a client's retrying transport
// so retry tests finish in milliseconds.
func setFastBackoff(t *testing.T, c *http.Client) {
	t.Helper()

	rt, ok := c.Transport.(*retryableRoundTripper)
	if !ok {
		t.Fatalf("transport is %T, not a retryable transport", c.Transport)
	}
	rt.backoff = &ExponentialBackoff{
		InitialInterval: time.Millisecond,
		MaxInterval:     time.Millisecond,
		Multiplier:      1.0,
	}
}
