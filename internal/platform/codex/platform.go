package codex

import (
	"log/slog"

	"github.com/thoreinstein/aisync/internal/model"
	"github.com/thoreinstein/aisync/internal/paths"
	"github.com/thoreinstein/aisync/internal/platform"
)

var (
	_ platform.Agent         = (*CodexPlatform)(nil)
	_ platform.SettingsOwner = (*CodexPlatform)(nil)
)

// CodexPlatform provides the unified platform adapter for Codex CLI.
type CodexPlatform struct {
	paths   *CodexPaths
	logger  *slog.Logger
	prompts *PromptManager
	skills  *SkillManager
	config  *ConfigManager
}

// Option configures a CodexPlatform instance.
type Option func(*CodexPlatform)

// WithLogger sets the logger used for warnings and progress.
func WithLogger(logger *slog.Logger) Option {
	return func(p *CodexPlatform) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewCodexPlatform creates an adapter bound to root.
func NewCodexPlatform(root string, opts ...Option) *CodexPlatform {
	p := &CodexPlatform{
		paths:  NewCodexPaths(root),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.logger = p.logger.With("platform", paths.PlatformCodex)
	p.prompts = NewPromptManager(p.paths, p.logger)
	p.skills = NewSkillManager(p.paths, p.logger)
	p.config = NewConfigManager(p.paths, p.logger)
	return p
}

// Name returns the platform identifier.
func (p *CodexPlatform) Name() string {
	return paths.PlatformCodex
}

// DisplayName returns a human-readable platform name.
func (p *CodexPlatform) DisplayName() string {
	return "Codex CLI"
}

// Root returns the configuration root.
func (p *CodexPlatform) Root() string {
	return p.paths.Root()
}

// Supports reports the Codex capability matrix.
func (p *CodexPlatform) Supports() model.FieldSupport {
	return model.FieldSupport{
		Commands:    true,
		MCPServers:  true,
		Preferences: true,
		Skills:      true,
	}
}

// ReadCommands returns custom prompts. Codex has no plugin marketplace, so
// opts is ignored.
func (p *CodexPlatform) ReadCommands(_ model.ReadOptions) ([]model.Command, error) {
	return p.prompts.Read()
}

func (p *CodexPlatform) WriteCommands(items []model.Command, opts model.WriteOptions) (model.WriteReport, error) {
	return p.prompts.Write(items, opts)
}

func (p *CodexPlatform) ReadMCPServers() ([]model.MCPServer, error) {
	return p.config.ReadMCPServers()
}

func (p *CodexPlatform) WriteMCPServers(servers []model.MCPServer, opts model.WriteOptions) (model.WriteReport, error) {
	return p.config.WriteMCPServers(servers, opts)
}

func (p *CodexPlatform) ReadPreferences() (model.Preferences, error) {
	return p.config.ReadPreferences()
}

func (p *CodexPlatform) WritePreferences(prefs model.Preferences, opts model.WriteOptions) (model.WriteReport, error) {
	return p.config.WritePreferences(prefs, opts)
}

func (p *CodexPlatform) ReadSkills() ([]model.Command, error) {
	return p.skills.Read()
}

func (p *CodexPlatform) WriteSkills(items []model.Command, opts model.WriteOptions) (model.WriteReport, error) {
	return p.skills.Write(items, opts)
}

// ReadHooks returns nothing; Codex has no hooks.
func (p *CodexPlatform) ReadHooks() ([]model.Command, error) {
	return nil, nil
}

// WriteHooks is a no-op.
func (p *CodexPlatform) WriteHooks(_ []model.Command, _ model.WriteOptions) (model.WriteReport, error) {
	return model.WriteReport{}, nil
}

// ReadAgents returns nothing; Codex has no sub-agents.
func (p *CodexPlatform) ReadAgents() ([]model.Command, error) {
	return nil, nil
}

// WriteAgents is a no-op.
func (p *CodexPlatform) WriteAgents(_ []model.Command, _ model.WriteOptions) (model.WriteReport, error) {
	return model.WriteReport{}, nil
}

// SettingsFiles returns the settings files a sync merges into.
func (p *CodexPlatform) SettingsFiles() []string {
	return []string{p.paths.ConfigPath()}
}
