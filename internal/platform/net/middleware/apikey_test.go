package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func apikeyHandler(key string) http.Handler {
	write := func(w http.ResponseWriter, _ *http.Request, _ error) {
		w.WriteHeader(http.StatusUnauthorized)
	}
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return APIKey(key, write)(next)
}

func TestAPIKey_MatchPasses(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-API-Key", "s3cret")
	rr := httptest.NewRecorder()

	apikeyHandler("s3cret").ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
}

func TestAPIKey_MismatchRejected(t *testing.T) {
	t.Parallel()

	for _, got := range []string{"", "wrong", "s3cret "} {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		if got != "" {
			req.Header.Set("X-API-Key", got)
		}
		rr := httptest.NewRecorder()

		apikeyHandler("s3cret").ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("key %q: status = %d, want 401", got, rr.Code)
		}
	}
}

func TestAPIKey_EmptyKeyDisablesCheck(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	rr := httptest.NewRecorder()

	apikeyHandler("").ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with empty configured key", rr.Code)
	}
}
