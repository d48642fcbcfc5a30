package httpkit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	phttp "turnstile/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func mountGuarded(key string) http.Handler {
	mux := chi.NewRouter()
	stack := append(CommonStack(), APIKey(key))
	MountAPIV1(phttp.AdaptChi(mux), stack, func(api Router) {
		api.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	return mux
}

func TestVersionedStackAPIKey(t *testing.T) {
	t.Parallel()

	h := mountGuarded("s3cret")

	t.Run("missing key rejected with envelope", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rr.Code)
		}
		if !strings.Contains(rr.Body.String(), "invalid api key") {
			t.Errorf("body = %s, want error envelope", rr.Body.String())
		}
	})

	t.Run("matching key passes", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
		req.Header.Set("X-API-Key", "s3cret")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rr.Code)
		}
	})
}

func TestVersionedStackAPIKeyDisabled(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	rr := httptest.NewRecorder()
	mountGuarded("").ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with no configured key", rr.Code)
	}
}
