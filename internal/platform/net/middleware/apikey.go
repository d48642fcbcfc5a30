package middleware

import (
	"crypto/subtle"
	"net/http"

	perr "turnstile/internal/platform/errors"
)

// APIKey guards internal operational routes with a shared key
// an empty configured key disables the check entirely
func APIKey(key string, write func(w http.ResponseWriter, r *http.Request, err error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}
			got := r.Header.Get("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				write(w, r, perr.Unauthorizedf("invalid api key"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
