// Package module implements the feed service module
package module

import (
	"mingle/internal/modkit"
	"mingle/internal/modkit/httpkit"
	"mingle/internal/services/feed/domain"
	"mingle/internal/services/feed/repo"
	"mingle/internal/services/feed/service"
)

// Ports exposed by the feed module
type Ports struct {
	Generate domain.GeneratePort
	Recorder domain.RecorderPort
	Stats    domain.StatsPort
}

// Module implements the feed service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the feed module, wiring the Postgres collaborators and,
// when a clickhouse seam is present, the serve-log sink
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	ports := repo.NewPGPorts(deps.PG)
	deps2 := service.Collaborators{
		Log:      ports,
		Pool:     ports,
		Authored: ports,
		Seen:     ports,
	}
	if deps.CH != nil {
		deps2.Serve = repo.NewCH(deps.CH)
	}

	svc := service.New(deps2, opts.Service, deps.Log)

	m := &Module{deps: deps}
	m.ports = Ports{
		Generate: svc,
		Recorder: svc,
		Stats:    svc,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "feedsvc" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module; the HTTP surface lives in the api tree
func (m *Module) MountRoutes(r httpkit.Router) {}
