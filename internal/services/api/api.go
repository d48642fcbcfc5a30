// Package api provides the HTTP API for the application
package api

import (
	"turnstile/internal/platform/config"
	"turnstile/internal/platform/logger"
	phttp "turnstile/internal/platform/net/http"
	"turnstile/internal/platform/store"

	"turnstile/internal/modkit"
	"turnstile/internal/modkit/httpkit"
	"turnstile/internal/modkit/module"
	"turnstile/internal/modkit/swaggerkit"

	compliancemod "turnstile/internal/services/api/compliance/module"
	metamod "turnstile/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	mods := []module.Module{
		metamod.New(deps),
		compliancemod.New(deps),
	}

	// versioned API with a common middleware stack
	// CORE_API_KEY guards the versioned surface, empty disables the check
	stack := append(
		httpkit.CommonStack(),
		httpkit.APIKey(opt.Config.Prefix("CORE_API_").MayString("KEY", "")),
	)
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name for cross-module lookups
			module.Register(m.Name(), m.Ports())

			m.MountRoutes(api)
		}
	})
}
