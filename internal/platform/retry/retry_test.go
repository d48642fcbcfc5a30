package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	perr "turnstile/internal/platform/errors"
	"turnstile/internal/platform/testkit"
)

func noSleep(t *testing.T) {
	t.Helper()
	testkit.Serial(t)
	testkit.Swap(t, &sleep, func(context.Context, time.Duration) error { return nil })
}

func TestDo_ExactAttemptCount(t *testing.T) {
	noSleep(t)

	calls := 0
	_, err := Do(context.Background(), func(context.Context) (int, error) {
		calls++
		return 0, errors.New("nope")
	}, 3, time.Millisecond)

	if err == nil {
		t.Fatal("expected error after exhaustion")
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want exactly 3", calls)
	}
}

func TestDo_FirstSuccessStops(t *testing.T) {
	noSleep(t)

	calls := 0
	out, err := Do(context.Background(), func(context.Context) (string, error) {
		calls++
		if calls < 2 {
			return "", errors.New("transient")
		}
		return "ok", nil
	}, 5, time.Millisecond)

	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if out != "ok" || calls != 2 {
		t.Fatalf("out = %q calls = %d, want ok after 2", out, calls)
	}
}

func TestDo_SingleAttemptMeansNoRetry(t *testing.T) {
	noSleep(t)

	calls := 0
	_, err := Do(context.Background(), func(context.Context) (int, error) {
		calls++
		return 0, errors.New("nope")
	}, 1, time.Millisecond)

	if err == nil || calls != 1 {
		t.Fatalf("calls = %d err = %v, want single failing attempt", calls, err)
	}
}

func TestDoIf_NonRetryableReturnsImmediately(t *testing.T) {
	noSleep(t)

	calls := 0
	_, err := DoIf(context.Background(), func(context.Context) (int, error) {
		calls++
		return 0, perr.Validationf("bad input")
	}, 5, time.Millisecond, Transient)

	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("err = %v, want validation", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1 for non-retryable", calls)
	}
}

func TestDo_ContextCancelStopsRetrying(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &sleep, func(context.Context, time.Duration) error { return context.Canceled })

	calls := 0
	_, err := Do(context.Background(), func(context.Context) (int, error) {
		calls++
		return 0, errors.New("nope")
	}, 5, time.Millisecond)

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1 before cancel surfaced", calls)
	}
}

func TestBackoff_DoublesAndCaps(t *testing.T) {
	t.Parallel()

	base := 100 * time.Millisecond
	for attempt, want := range map[int]time.Duration{
		1: 100 * time.Millisecond,
		2: 200 * time.Millisecond,
		3: 400 * time.Millisecond,
	} {
		if got := backoff(base, attempt); got != want {
			t.Errorf("backoff(%v, %d) = %v, want %v", base, attempt, got, want)
		}
	}
	if got := backoff(time.Second, 40); got != 30*time.Second {
		t.Errorf("backoff cap = %v, want 30s", got)
	}
}
