package cli

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/aisync/internal/config"
	"github.com/thoreinstein/aisync/internal/errors"
	"github.com/thoreinstein/aisync/internal/paths"
	"github.com/thoreinstein/aisync/internal/platform"
)

// ErrSamePlatform is returned when source and target resolve to the same
// platform and root.
var ErrSamePlatform = errors.New("source and target are the same")

// Resolver builds adapters from platform names.
type Resolver struct {
	Env      paths.Env
	Config   *config.Config
	Registry *platform.Registry
	Logger   *slog.Logger
}

// Root returns the root for name. An explicit override wins over the
// configured config_dir, which wins over the platform default.
func (r *Resolver) Root(name, override string) (string, error) {
	if !paths.ValidPlatform(name) {
		return "", errors.Wrapf(paths.ErrUnknownPlatform, "%q (valid: %s)", name, strings.Join(paths.Platforms(), ", "))
	}

	root := override
	if root == "" {
		root = r.Config.RootOverride(name, r.Env.Home)
	}
	if root == "" {
		return r.Env.DefaultRoot(name)
	}

	root = config.ExpandHome(root, r.Env.Home)
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s root %s", name, root)
	}
	return abs, nil
}

// Resolve builds the adapter for name bound to its resolved root.
func (r *Resolver) Resolve(name, override string) (platform.Agent, error) {
	root, err := r.Root(name, override)
	if err != nil {
		return nil, err
	}
	registry := r.Registry
	if registry == nil {
		registry = DefaultRegistry()
	}
	return registry.New(name, root, r.Logger)
}

// ResolvePair builds the source and target adapters. Syncing a root onto
// itself is rejected.
func (r *Resolver) ResolvePair(from, fromRoot, to, toRoot string) (source, target platform.Agent, err error) {
	source, err = r.Resolve(from, fromRoot)
	if err != nil {
		return nil, nil, err
	}
	target, err = r.Resolve(to, toRoot)
	if err != nil {
		return nil, nil, err
	}
	if source.Name() == target.Name() && filepath.Clean(source.Root()) == filepath.Clean(target.Root()) {
		return nil, nil, errors.Wrapf(ErrSamePlatform, "%s at %s", source.Name(), source.Root())
	}
	return source, target, nil
}

// Agents builds one adapter per registered platform at its resolved root,
// skipping platforms whose root cannot be resolved.
func (r *Resolver) Agents() []platform.Agent {
	registry := r.Registry
	if registry == nil {
		registry = DefaultRegistry()
	}
	agents := make([]platform.Agent, 0, len(registry.Names()))
	for _, name := range registry.Names() {
		a, err := r.Resolve(name, "")
		if err != nil {
			if r.Logger != nil {
				r.Logger.Debug("skipping platform", "platform", name, "error", err)
			}
			continue
		}
		agents = append(agents, a)
	}
	return agents
}
