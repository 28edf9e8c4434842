// Package build tracks the compile source roots registered with the host
// build. Registration is in-memory bookkeeping only; the host build decides
// what to do with the roots.
package build

import (
	"sync"

	"go.uber.org/zap"
)

// Registry records compile source roots. The zero value is not usable;
// construct with NewRegistry.
type Registry struct {
	mu    sync.Mutex
	roots []string
	seen  map[string]struct{}
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]struct{})}
}

// Register adds path as a compile source root. Registering the same path
// again is a no-op, never an error.
func (r *Registry) Register(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.seen[path]; ok {
		return
	}

	r.seen[path] = struct{}{}
	r.roots = append(r.roots, path)

	zap.L().Info("registered compile source root", zap.String("path", path))
}

// Roots returns the registered roots in registration order.
func (r *Registry) Roots() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.roots))
	copy(out, r.roots)
	return out
}

// Contains reports whether path has been registered.
func (r *Registry) Contains(path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.seen[path]
	return ok
}
