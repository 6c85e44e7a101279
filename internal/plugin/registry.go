package plugin

import (
	"context"
	"log/slog"
	"sync"
)

// Factory constructs a plugin instance. Construction happens during
// [Registry.Initialize], not at registration time, so a failing plugin can
// be skipped without aborting the others.
type Factory func() (SportPlugin, error)

// registration pairs a factory with the name it was registered under.
type registration struct {
	name    string
	factory Factory
}

// Registry holds the process-wide set of sport plugins. Factories are
// registered at startup; instances are built once, lazily, on first use.
// Dispatch walks plugins in registration order.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu          sync.Mutex
	factories   []registration
	plugins     []SportPlugin
	byName      map[string]SportPlugin
	initialized bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]SportPlugin)}
}

// Register adds a plugin factory under name. Registrations after
// [Registry.Initialize] has run are ignored with a warning; the plugin set
// is fixed once dispatch begins.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.initialized {
		slog.Warn("plugin: registration after initialize ignored", "plugin", name)
		return
	}
	r.factories = append(r.factories, registration{name: name, factory: factory})
}

// Initialize builds every registered plugin. It is idempotent: a second
// call, or a concurrent first use, is a no-op. A factory that fails is
// logged and skipped so one broken plugin cannot block the others.
func (r *Registry) Initialize() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.initializeLocked()
}

func (r *Registry) initializeLocked() {
	if r.initialized {
		return
	}
	for _, reg := range r.factories {
		p, err := reg.factory()
		if err != nil {
			slog.Error("plugin: failed to load, skipping", "plugin", reg.name, "err", err)
			continue
		}
		r.plugins = append(r.plugins, p)
		r.byName[reg.name] = p
		slog.Info("plugin: loaded", "plugin", reg.name)
	}
	if len(r.plugins) == 0 {
		slog.Warn("plugin: no plugins loaded; sports queries will not be answerable")
	}
	r.initialized = true
}

// snapshot returns the initialized plugin list, initializing on first use.
func (r *Registry) snapshot() []SportPlugin {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.initializeLocked()
	return r.plugins
}

// ForTeam returns the first plugin, in registration order, whose
// SupportsTeam predicate claims the query.
func (r *Registry) ForTeam(ctx context.Context, query string) (SportPlugin, bool) {
	for _, p := range r.snapshot() {
		if p.SupportsTeam(ctx, query) {
			return p, true
		}
	}
	return nil, false
}

// ForPlayer returns the first plugin, in registration order, whose
// SupportsPlayer predicate claims the query.
func (r *Registry) ForPlayer(ctx context.Context, query string) (SportPlugin, bool) {
	for _, p := range r.snapshot() {
		if p.SupportsPlayer(ctx, query) {
			return p, true
		}
	}
	return nil, false
}

// ByName returns the plugin registered under name.
func (r *Registry) ByName(name string) (SportPlugin, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.initializeLocked()
	p, ok := r.byName[name]
	return p, ok
}

// All returns every loaded plugin in registration order.
func (r *Registry) All() []SportPlugin {
	return r.snapshot()
}
