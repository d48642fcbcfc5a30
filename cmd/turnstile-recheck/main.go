package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"
	"time"

	"turnstile/internal/platform/config"
	"turnstile/internal/platform/logger"
	"turnstile/internal/platform/store"

	"turnstile/internal/adapters/exclusion"
	"turnstile/internal/modkit/repokit"
	compliancemod "turnstile/internal/services/api/compliance/module"
	orepo "turnstile/internal/services/onboarding/repo"
	rsvc "turnstile/internal/services/recheck/service"
)

func main() {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")

	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		AppName: "turnstile-recheck",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
		CH: store.CHConfig{
			Enabled: chCfg.MayBool("ENABLED", true),
			URL:     chCfg.MayString("DBURL", ""),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// refuse to sweep with unreachable dependencies
	repokit.MustGuard(context.Background(), st)

	var (
		fMode     = flag.String("mode", "once", "recheck mode: once | worker")
		fInterval = flag.Duration("interval", 24*time.Hour, "sweep interval in worker mode")
	)
	flag.Parse()

	cfg := compliancemod.FromConfig(root)

	excl := exclusion.NewClient(exclusion.Options{
		APIURL:      cfg.ExclusionAPIURL,
		BatchAPIURL: cfg.ExclusionBatchAPIURL,
		APIKey:      cfg.ExclusionAPIKey,
		Timeout:     cfg.ExclusionTimeout,
		BatchLimit:  cfg.ExclusionBatchLimit,
	})

	sweep := rsvc.New(st.PG, orepo.NewPG(), rsvc.Options{
		Exclusion: excl,
		CH:        st.CH,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	run := func() {
		rep, err := sweep.Run(ctx)
		if err != nil {
			l.Error().Err(err).Msg("recheck sweep failed")
			return
		}
		l.Info().
			Int("total", rep.TotalUsers).
			Int("updated", rep.Updated).
			Int("errors", rep.Errors).
			Msg("recheck sweep complete")
	}

	switch *fMode {
	case "once":
		run()

	case "worker":
		t := time.NewTicker(*fInterval)
		defer t.Stop()
		run()
		for {
			select {
			case <-ctx.Done():
				l.Info().Msg("recheck worker shutting down")
				return
			case <-t.C:
				run()
			}
		}

	default:
		l.Panic().Str("mode", *fMode).Msg("recheck unknown -mode (expected: once | worker)")
	}
}
