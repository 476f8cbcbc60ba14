package module

import "sync"

// process-wide port registry for cross-module wiring during bootstrap

var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores a port bundle under a module name
func Register(name string, ports any) {
	mu.Lock()
	reg[name] = ports
	mu.Unlock()
}

// PortsAs fetches and type-asserts a port bundle by module name
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	out, ok := v.(T)
	return out, ok
}

// Reset clears the registry; for tests
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}
