// Package retry provides a bounded retry combinator with exponential backoff
package retry

import (
	"context"
	"time"

	perr "turnstile/internal/platform/errors"
)

// sleep is a package seam so tests can run without real delays
var sleep = func(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Do runs op up to maxAttempts times, waiting base * 2^(attempt-1) between
// attempts. It returns the first success, or the last error once attempts are
// exhausted. maxAttempts = 1 means no retry; below 1 is a programmer error
func Do[T any](ctx context.Context, op func(context.Context) (T, error), maxAttempts int, base time.Duration) (T, error) {
	return DoIf(ctx, op, maxAttempts, base, func(error) bool { return true })
}

// DoIf is Do with a retryable classifier: a failure the classifier rejects is
// returned immediately. Use this to keep business-validation failures (4xx
// except 429) out of the retry loop
func DoIf[T any](
	ctx context.Context,
	op func(context.Context) (T, error),
	maxAttempts int,
	base time.Duration,
	retryable func(error) bool,
) (T, error) {
	var zero T
	if maxAttempts < 1 {
		return zero, perr.InvalidArgf("retry: maxAttempts %d, want >= 1", maxAttempts)
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		out, err := op(ctx)
		if err == nil {
			return out, nil
		}
		lastErr = err
		if attempt == maxAttempts || !retryable(err) {
			break
		}
		if serr := sleep(ctx, backoff(base, attempt)); serr != nil {
			return zero, serr
		}
	}
	return zero, lastErr
}

// Transient reuses the platform error classification for retry decisions
func Transient(err error) bool { return perr.Retryable(err) }

// backoff returns base * 2^(attempt-1), capped at 30s
func backoff(base time.Duration, attempt int) time.Duration {
	if base <= 0 {
		return 0
	}
	d := base << uint(attempt-1)
	const ceiling = 30 * time.Second
	if d > ceiling || d < base { // overflow guard
		return ceiling
	}
	return d
}
