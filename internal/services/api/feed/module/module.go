// Package module mounts the feed HTTP surface over the feed service ports
package module

import (
	"net/http"

	modkit "mingle/internal/modkit"
	"mingle/internal/modkit/httpkit"
	str "mingle/internal/platform/strings"

	feedhttp "mingle/internal/services/api/feed/http"
	"mingle/internal/services/feed/domain"
)

// Ports required by the feed API module
type Ports struct {
	Generate domain.GeneratePort
	Stats    domain.StatsPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  Ports

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs the feed API module; the Generate and Stats ports are
// injected from the feed service module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("feed"),
		modkit.WithPrefix("/feed"),
	}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok || ports.Generate == nil {
		panic("feed api module requires a Generate port")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		ports:     ports,
		subrouter: b.Subrouter,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		feedhttp.Register(r, ports.Generate, ports.Stats)
		if external != nil {
			external(r)
		}
	}

	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "feed") }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.ports }
