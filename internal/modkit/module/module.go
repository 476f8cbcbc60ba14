// Package module defines the minimal modkit module contract
package module

import (
	phttp "mingle/internal/platform/net/http"
)

// Module is the contract modkit needs; kept as a sibling package to avoid
// import knots when a module also exports its own ports type
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
