package platform

import (
	"log/slog"
	"sync"

	"github.com/thoreinstein/aisync/internal/errors"
	"github.com/thoreinstein/aisync/internal/paths"
)

// Sentinel errors for registry operations.
var (
	// ErrPlatformAlreadyRegistered is returned when attempting to register
	// a platform with a name that is already in use.
	ErrPlatformAlreadyRegistered = errors.New("platform already registered")

	// ErrInvalidPlatformName is returned when attempting to register
	// a platform with an invalid name.
	ErrInvalidPlatformName = errors.New("invalid platform name")

	// ErrPlatformNotRegistered is returned by New for unknown names.
	ErrPlatformNotRegistered = errors.New("platform not registered")
)

// Factory builds an adapter bound to root.
type Factory func(root string, logger *slog.Logger) Agent

// Registry maps platform names to adapter factories.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a new empty platform registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory under name.
// Returns an error if:
//   - The platform name is not valid per paths.ValidPlatform
//   - A platform with the same name is already registered
func (r *Registry) Register(name string, factory Factory) error {
	if !paths.ValidPlatform(name) || factory == nil {
		return errors.Wrapf(ErrInvalidPlatformName, "%q", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return errors.Wrapf(ErrPlatformAlreadyRegistered, "%q", name)
	}

	r.factories[name] = factory
	return nil
}

// New builds the adapter registered under name, bound to root.
func (r *Registry) New(name, root string, logger *slog.Logger) (Agent, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.Wrapf(ErrPlatformNotRegistered, "%q", name)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return factory(root, logger), nil
}

// Names returns all registered platform names in the order defined by
// paths.Platforms.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for _, name := range paths.Platforms() {
		if _, ok := r.factories[name]; ok {
			names = append(names, name)
		}
	}
	return names
}
