package codex

import "path/filepath"

// CodexPaths resolves Codex CLI locations under one root.
type CodexPaths struct {
	root string
}

// NewCodexPaths creates a new CodexPaths instance.
func NewCodexPaths(root string) *CodexPaths {
	return &CodexPaths{root: root}
}

// Root returns the configuration root.
func (p *CodexPaths) Root() string {
	return p.root
}

// PromptDir returns <root>/prompts.
func (p *CodexPaths) PromptDir() string {
	return filepath.Join(p.root, "prompts")
}

// SkillDir returns <root>/skills.
func (p *CodexPaths) SkillDir() string {
	return filepath.Join(p.root, "skills")
}

// ConfigPath returns <root>/config.toml.
func (p *CodexPaths) ConfigPath() string {
	return filepath.Join(p.root, "config.toml")
}
