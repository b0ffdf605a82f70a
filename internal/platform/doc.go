// Package platform defines the adapter contract shared by every supported
// AI coding agent and the registry that builds adapters by name.
//
// Each ecosystem (Claude Code, Codex CLI, GitHub Copilot CLI) lives in its
// own subpackage and satisfies [Agent]. Adapters are always constructed
// with an explicit root; default roots are resolved by the caller through
// the paths package.
//
//	reg := platform.NewRegistry()
//	_ = reg.Register(paths.PlatformClaude, func(root string, l *slog.Logger) platform.Agent {
//		return claude.NewClaudePlatform(root, claude.WithLogger(l))
//	})
//	agent, err := reg.New(paths.PlatformClaude, "/home/me/.claude", logger)
//
// # Installation Status
//
// [Detect] reports whether an adapter's root exists together with its
// capability matrix.
package platform
