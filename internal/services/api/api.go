// Package api provides the HTTP API for the application
package api

import (
	"mingle/internal/platform/config"
	"mingle/internal/platform/logger"
	phttp "mingle/internal/platform/net/http"
	"mingle/internal/platform/store"

	"mingle/internal/modkit"
	"mingle/internal/modkit/httpkit"
	"mingle/internal/modkit/module"
	"mingle/internal/modkit/swaggerkit"

	apifeed "mingle/internal/services/api/feed/module"
	apiix "mingle/internal/services/api/interactions/module"
	metamod "mingle/internal/services/api/meta/module"

	feedmod "mingle/internal/services/feed/module"
)

// Options are the API options
type Options struct {
	Config        config.Conf
	Store         *store.Store
	Logger        logger.Logger
	EnableSwagger bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Log: opt.Logger,
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// the feed service module owns the engine; the API modules borrow its ports
	feed := feedmod.New(deps)
	ports := module.MustPortsOf[feedmod.Ports](feed)

	apiFeed := apifeed.New(deps, modkit.WithPorts(apifeed.Ports{
		Generate: ports.Generate,
		Stats:    ports.Stats,
	}))
	apiInteractions := apiix.New(deps, modkit.WithPorts(apiix.Ports{
		Recorder: ports.Recorder,
	}))

	mods := []modkit.Module{
		metamod.New(deps),
		feed,
		apiFeed,
		apiInteractions,
	}

	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)

		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
