// Package swaggerkit mounts the Swagger UI and its document endpoint
package swaggerkit

import (
	"net/http"

	phttp "turnstile/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount wires /api/docs when enabled and is a no-op otherwise
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON())
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
