// Package modkit provides module wiring and shared dependencies
package modkit

import (
	"mingle/internal/modkit/repokit"
	"mingle/internal/platform/config"
	"mingle/internal/platform/logger"
	"mingle/internal/platform/store"
)

// Deps holds the core dependencies handed to every module.
// Wiring only; no new abstractions live here
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}
