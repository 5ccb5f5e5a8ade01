package module

import "sync"

// registry of port sets keyed by module name, filled during bootstrap
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores the port set of m under its name; nil ports are skipped
func Register(m Module) {
	if m == nil || m.Ports() == nil {
		return
	}
	mu.Lock()
	reg[m.Name()] = m.Ports()
	mu.Unlock()
}

// PortsAs fetches the port set registered for name and asserts it to T
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

// Names lists registered module names in no particular order
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(reg))
	for k := range reg {
		out = append(out, k)
	}
	return out
}

// Reset clears the registry for tests
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}
