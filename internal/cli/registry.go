package cli

import (
	"log/slog"

	"github.com/thoreinstein/aisync/internal/paths"
	"github.com/thoreinstein/aisync/internal/platform"
	"github.com/thoreinstein/aisync/internal/platform/claude"
	"github.com/thoreinstein/aisync/internal/platform/codex"
	"github.com/thoreinstein/aisync/internal/platform/copilot"
)

// DefaultRegistry returns a registry holding every built-in adapter.
func DefaultRegistry() *platform.Registry {
	r := platform.NewRegistry()
	mustRegister(r, paths.PlatformClaude, func(root string, logger *slog.Logger) platform.Agent {
		return claude.NewClaudePlatform(root, claude.WithLogger(logger))
	})
	mustRegister(r, paths.PlatformCodex, func(root string, logger *slog.Logger) platform.Agent {
		return codex.NewCodexPlatform(root, codex.WithLogger(logger))
	})
	mustRegister(r, paths.PlatformCopilot, func(root string, logger *slog.Logger) platform.Agent {
		return copilot.NewCopilotPlatform(root, copilot.WithLogger(logger))
	})
	return r
}

func mustRegister(r *platform.Registry, name string, f platform.Factory) {
	if err := r.Register(name, f); err != nil {
		panic(err)
	}
}
