package copilot

import (
	"log/slog"

	"github.com/thoreinstein/aisync/internal/model"
	"github.com/thoreinstein/aisync/internal/paths"
	"github.com/thoreinstein/aisync/internal/platform"
)

var (
	_ platform.Agent         = (*CopilotPlatform)(nil)
	_ platform.SettingsOwner = (*CopilotPlatform)(nil)
)

// CopilotPlatform provides the unified platform adapter for GitHub Copilot
// CLI.
type CopilotPlatform struct {
	paths    *CopilotPaths
	logger   *slog.Logger
	skills   *SkillManager
	agents   *AgentManager
	settings *SettingsManager
}

// Option configures a CopilotPlatform instance.
type Option func(*CopilotPlatform)

// WithLogger sets the logger used for warnings and progress.
func WithLogger(logger *slog.Logger) Option {
	return func(p *CopilotPlatform) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewCopilotPlatform creates an adapter bound to root.
func NewCopilotPlatform(root string, opts ...Option) *CopilotPlatform {
	p := &CopilotPlatform{
		paths:  NewCopilotPaths(root),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.logger = p.logger.With("platform", paths.PlatformCopilot)
	p.skills = NewSkillManager(p.paths, p.logger)
	p.agents = NewAgentManager(p.paths, p.logger)
	p.settings = NewSettingsManager(p.paths, p.logger)
	return p
}

// Name returns the platform identifier.
func (p *CopilotPlatform) Name() string {
	return paths.PlatformCopilot
}

// DisplayName returns a human-readable platform name.
func (p *CopilotPlatform) DisplayName() string {
	return "GitHub Copilot CLI"
}

// Root returns the configuration root.
func (p *CopilotPlatform) Root() string {
	return p.paths.Root()
}

// Supports reports the Copilot capability matrix.
func (p *CopilotPlatform) Supports() model.FieldSupport {
	return model.FieldSupport{
		MCPServers:  true,
		Preferences: true,
		Skills:      true,
		Agents:      true,
	}
}

// ReadCommands returns nothing; Copilot CLI has no slash command files.
func (p *CopilotPlatform) ReadCommands(_ model.ReadOptions) ([]model.Command, error) {
	return nil, nil
}

// WriteCommands is a no-op.
func (p *CopilotPlatform) WriteCommands(_ []model.Command, _ model.WriteOptions) (model.WriteReport, error) {
	return model.WriteReport{}, nil
}

func (p *CopilotPlatform) ReadMCPServers() ([]model.MCPServer, error) {
	return p.settings.ReadMCPServers()
}

func (p *CopilotPlatform) WriteMCPServers(servers []model.MCPServer, opts model.WriteOptions) (model.WriteReport, error) {
	return p.settings.WriteMCPServers(servers, opts)
}

func (p *CopilotPlatform) ReadPreferences() (model.Preferences, error) {
	return p.settings.ReadPreferences()
}

func (p *CopilotPlatform) WritePreferences(prefs model.Preferences, opts model.WriteOptions) (model.WriteReport, error) {
	return p.settings.WritePreferences(prefs, opts)
}

func (p *CopilotPlatform) ReadSkills() ([]model.Command, error) {
	return p.skills.Read()
}

func (p *CopilotPlatform) WriteSkills(items []model.Command, opts model.WriteOptions) (model.WriteReport, error) {
	return p.skills.Write(items, opts)
}

// ReadHooks returns nothing; Copilot CLI has no hooks.
func (p *CopilotPlatform) ReadHooks() ([]model.Command, error) {
	return nil, nil
}

// WriteHooks is a no-op.
func (p *CopilotPlatform) WriteHooks(_ []model.Command, _ model.WriteOptions) (model.WriteReport, error) {
	return model.WriteReport{}, nil
}

func (p *CopilotPlatform) ReadAgents() ([]model.Command, error) {
	return p.agents.Read()
}

func (p *CopilotPlatform) WriteAgents(items []model.Command, opts model.WriteOptions) (model.WriteReport, error) {
	return p.agents.Write(items, opts)
}

// SettingsFiles returns the settings files a sync merges into.
func (p *CopilotPlatform) SettingsFiles() []string {
	return []string{p.paths.MCPConfigPath(), p.paths.ConfigPath()}
}
