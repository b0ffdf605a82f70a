package claude

import "path/filepath"

// ClaudePaths resolves Claude Code locations under one root.
type ClaudePaths struct {
	root string
}

// NewClaudePaths creates a new ClaudePaths instance.
func NewClaudePaths(root string) *ClaudePaths {
	return &ClaudePaths{root: root}
}

// Root returns the configuration root.
func (p *ClaudePaths) Root() string {
	return p.root
}

// CommandDir returns <root>/commands.
func (p *ClaudePaths) CommandDir() string {
	return filepath.Join(p.root, "commands")
}

// PluginCacheDir returns <root>/plugins/cache.
func (p *ClaudePaths) PluginCacheDir() string {
	return filepath.Join(p.root, "plugins", "cache")
}

// MarketplaceDir returns <root>/plugins/marketplaces.
func (p *ClaudePaths) MarketplaceDir() string {
	return filepath.Join(p.root, "plugins", "marketplaces")
}

// SkillDir returns <root>/skills.
func (p *ClaudePaths) SkillDir() string {
	return filepath.Join(p.root, "skills")
}

// HookDir returns <root>/hooks.
func (p *ClaudePaths) HookDir() string {
	return filepath.Join(p.root, "hooks")
}

// AgentDir returns <root>/agents.
func (p *ClaudePaths) AgentDir() string {
	return filepath.Join(p.root, "agents")
}

// SettingsPath returns <root>/settings.json.
func (p *ClaudePaths) SettingsPath() string {
	return filepath.Join(p.root, "settings.json")
}
