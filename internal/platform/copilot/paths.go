package copilot

import "path/filepath"

// CopilotPaths resolves Copilot CLI locations under one root.
type CopilotPaths struct {
	root string
}

// NewCopilotPaths creates a new CopilotPaths instance.
func NewCopilotPaths(root string) *CopilotPaths {
	return &CopilotPaths{root: root}
}

// Root returns the configuration root.
func (p *CopilotPaths) Root() string {
	return p.root
}

// SkillDir returns <root>/skills.
func (p *CopilotPaths) SkillDir() string {
	return filepath.Join(p.root, "skills")
}

// AgentDir returns <root>/agents.
func (p *CopilotPaths) AgentDir() string {
	return filepath.Join(p.root, "agents")
}

// MCPConfigPath returns <root>/mcp-config.json.
func (p *CopilotPaths) MCPConfigPath() string {
	return filepath.Join(p.root, "mcp-config.json")
}

// ConfigPath returns <root>/config.json.
func (p *CopilotPaths) ConfigPath() string {
	return filepath.Join(p.root, "config.json")
}
