// Package modkit provides module wiring and core deps
package modkit

import (
	"turnstile/internal/modkit/repokit"
	"turnstile/internal/platform/config"
	"turnstile/internal/platform/logger"
	"turnstile/internal/platform/store"
)

// Deps holds the core dependencies handed to every module. It is wiring
// only; optional stores may be nil and modules check for that themselves
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}
