package claude

import (
	"log/slog"

	"github.com/thoreinstein/aisync/internal/model"
	"github.com/thoreinstein/aisync/internal/paths"
	"github.com/thoreinstein/aisync/internal/platform"
)

var (
	_ platform.Agent         = (*ClaudePlatform)(nil)
	_ platform.SettingsOwner = (*ClaudePlatform)(nil)
)

// ClaudePlatform provides the unified platform adapter for Claude Code.
// It aggregates all Claude-specific managers behind platform.Agent.
type ClaudePlatform struct {
	paths    *ClaudePaths
	logger   *slog.Logger
	commands *CommandManager
	skills   *SkillManager
	hooks    *HookManager
	agents   *AgentManager
	settings *SettingsManager
}

// Option configures a ClaudePlatform instance.
type Option func(*ClaudePlatform)

// WithLogger sets the logger used for warnings and progress.
func WithLogger(logger *slog.Logger) Option {
	return func(p *ClaudePlatform) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewClaudePlatform creates an adapter bound to root.
func NewClaudePlatform(root string, opts ...Option) *ClaudePlatform {
	p := &ClaudePlatform{
		paths:  NewClaudePaths(root),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.logger = p.logger.With("platform", paths.PlatformClaude)
	p.commands = NewCommandManager(p.paths, p.logger)
	p.skills = NewSkillManager(p.paths, p.logger)
	p.hooks = NewHookManager(p.paths, p.logger)
	p.agents = NewAgentManager(p.paths, p.logger)
	p.settings = NewSettingsManager(p.paths, p.logger)
	return p
}

// Name returns the platform identifier.
func (p *ClaudePlatform) Name() string {
	return paths.PlatformClaude
}

// DisplayName returns a human-readable platform name.
func (p *ClaudePlatform) DisplayName() string {
	return "Claude Code"
}

// Root returns the configuration root.
func (p *ClaudePlatform) Root() string {
	return p.paths.Root()
}

// Supports reports that Claude Code handles every domain.
func (p *ClaudePlatform) Supports() model.FieldSupport {
	return model.FieldSupport{
		Commands:    true,
		MCPServers:  true,
		Preferences: true,
		Skills:      true,
		Hooks:       true,
		Agents:      true,
	}
}

func (p *ClaudePlatform) ReadCommands(opts model.ReadOptions) ([]model.Command, error) {
	return p.commands.Read(opts)
}

func (p *ClaudePlatform) WriteCommands(items []model.Command, opts model.WriteOptions) (model.WriteReport, error) {
	return p.commands.Write(items, opts)
}

func (p *ClaudePlatform) ReadMCPServers() ([]model.MCPServer, error) {
	return p.settings.ReadMCPServers()
}

func (p *ClaudePlatform) WriteMCPServers(servers []model.MCPServer, opts model.WriteOptions) (model.WriteReport, error) {
	return p.settings.WriteMCPServers(servers, opts)
}

func (p *ClaudePlatform) ReadPreferences() (model.Preferences, error) {
	return p.settings.ReadPreferences()
}

func (p *ClaudePlatform) WritePreferences(prefs model.Preferences, opts model.WriteOptions) (model.WriteReport, error) {
	return p.settings.WritePreferences(prefs, opts)
}

func (p *ClaudePlatform) ReadSkills() ([]model.Command, error) {
	return p.skills.Read()
}

func (p *ClaudePlatform) WriteSkills(items []model.Command, opts model.WriteOptions) (model.WriteReport, error) {
	return p.skills.Write(items, opts)
}

func (p *ClaudePlatform) ReadHooks() ([]model.Command, error) {
	return p.hooks.Read()
}

func (p *ClaudePlatform) WriteHooks(items []model.Command, opts model.WriteOptions) (model.WriteReport, error) {
	return p.hooks.Write(items, opts)
}

func (p *ClaudePlatform) ReadAgents() ([]model.Command, error) {
	return p.agents.Read()
}

func (p *ClaudePlatform) WriteAgents(items []model.Command, opts model.WriteOptions) (model.WriteReport, error) {
	return p.agents.Write(items, opts)
}

// SettingsFiles returns the settings files a sync merges into.
func (p *ClaudePlatform) SettingsFiles() []string {
	return []string{p.paths.SettingsPath()}
}
