// Package module wires compliance into the API using modkit
package module

import (
	"context"
	"net/http"
	"time"

	"turnstile/internal/adapters/exclusion"
	"turnstile/internal/adapters/identity"
	modkit "turnstile/internal/modkit"
	"turnstile/internal/modkit/httpkit"

	chttp "turnstile/internal/services/api/compliance/http"
	orepo "turnstile/internal/services/onboarding/repo"
	osvc "turnstile/internal/services/onboarding/service"
	rsvc "turnstile/internal/services/recheck/service"
)

// Module implements the compliance API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc   osvc.Service
	sweep rsvc.Service
}

// New constructs the compliance module (config-driven)
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("compliance"),
		modkit.WithPrefix("/compliance"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	repoBinder := orepo.NewPG()

	excl := exclusion.NewClient(exclusion.Options{
		APIURL:      cfg.ExclusionAPIURL,
		BatchAPIURL: cfg.ExclusionBatchAPIURL,
		APIKey:      cfg.ExclusionAPIKey,
		Timeout:     cfg.ExclusionTimeout,
		BatchLimit:  cfg.ExclusionBatchLimit,
	})

	ident := identity.NewClient(identity.Options{
		BaseURL:           cfg.IdentityBaseURL,
		AuthURL:           cfg.IdentityAuthURL,
		ClientID:          cfg.IdentityClientID,
		ClientSecret:      cfg.IdentityClientSecret,
		Username:          cfg.IdentityUsername,
		Password:          cfg.IdentityPassword,
		Timeout:           cfg.IdentityTimeout,
		TokenSafetyBuffer: cfg.TokenSafetyBuffer,
		MaxRetries:        cfg.IdentityMaxRetries,
		RetryBase:         cfg.IdentityRetryBase,
	})

	svc := osvc.New(deps.PG, repoBinder, osvc.Options{
		Exclusion: excl,
		Identity:  ident,
		Tokens:    ident.Tokens(),
	})

	sweep := rsvc.New(deps.PG, repoBinder, rsvc.Options{
		Exclusion: excl,
		CH:        deps.CH,
		Pause:     pauseFor(cfg.RecheckPause),
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
		sweep:     sweep,
	}
	m.ports = adaptCompliancePort{svc: svc, sweep: sweep}

	external := b.Register
	m.register = func(r httpkit.Router) {
		chttp.Register(r, m.svc, m.sweep)
		if external != nil {
			external(r)
		}
	}
	return m
}

// pauseFor builds the inter-chunk wait used by the recheck sweep
func pauseFor(d time.Duration) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			return nil
		}
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }
