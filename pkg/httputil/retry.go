// Package httputil provides HTTP plumbing shared by the canvas API
// client: retry with exponential backoff and response classification.
package httputil

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// RetryableError marks an error as transient (network timeout, 5xx
// response, rate limit) so that [Retry] attempts the operation again.
// Errors not wrapped in this type abort the retry loop immediately.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry executes fn up to attempts times, sleeping delay between tries
// and doubling it after each failure. It returns nil on the first
// success, the error itself when it is not a [RetryableError], the last
// error when all attempts are exhausted, or ctx.Err() when the context
// is cancelled while waiting.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for remaining := attempts; remaining > 0; remaining-- {
		err := fn()
		if err == nil {
			return nil
		}
		if !errors.As(err, new(*RetryableError)) {
			return err
		}
		lastErr = err

		if remaining == 1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return lastErr
}

// RetryWithBackoff runs fn with the default policy: 3 attempts starting
// at a 1 second delay.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return Retry(ctx, 3, time.Second, fn)
}

// IsTransientStatus reports whether an HTTP status code indicates a
// failure worth retrying: 429 rate limits and 5xx server errors.
func IsTransientStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}
