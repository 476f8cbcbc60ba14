package modkit

import (
	phttp "mingle/internal/platform/net/http"
)

// Module is the common surface for modules that mount routes and expose ports.
// Kept tiny so modules stay decoupled
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)
	// Ports returns a module-specific port bundle for cross wiring
	Ports() any
	// Name returns the module name
	Name() string
}

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module
