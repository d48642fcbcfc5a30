// Package module holds the minimal modkit module contract
package module

import (
	phttp "turnstile/internal/platform/net/http"
)

// Module mirrors modkit.Module. It lives in its own package so a module can
// export its ports type without an import knot
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
