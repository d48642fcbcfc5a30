package modkit

import (
	phttp "turnstile/internal/platform/net/http"
)

// Module is what every API module exposes: routes and a port bundle.
// Keeping this tiny keeps modules decoupled
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)

	// Ports returns the module's port set for cross wiring
	Ports() any

	// Name returns the module name
	Name() string
}

// Builder constructs a Module from shared deps and options.
// Modules typically expose New(deps Deps, opts ...Option) in this shape
type Builder func(Deps, ...Option) Module
