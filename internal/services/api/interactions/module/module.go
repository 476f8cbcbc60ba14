// Package module mounts the interactions HTTP surface over the recorder port
package module

import (
	"net/http"

	modkit "mingle/internal/modkit"
	"mingle/internal/modkit/httpkit"
	str "mingle/internal/platform/strings"

	ixhttp "mingle/internal/services/api/interactions/http"
	"mingle/internal/services/feed/domain"
)

// Ports required by the interactions API module
type Ports struct {
	Recorder domain.RecorderPort
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

// New constructs the interactions API module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("interactions"),
		modkit.WithPrefix("/interactions"),
	}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok || ports.Recorder == nil {
		panic("interactions api module requires a Recorder port")
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
		ixhttp.Register(r, ports.Recorder)
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
func (m *Module) Name() string { return str.MustString(m.name, "interactions") }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.ports }
