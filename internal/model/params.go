package model

// SyncParams selects what one sync run does.
type SyncParams struct {
	// Source and Target name the platforms involved. Informational only; the
	// caller chooses the adapters.
	Source string
	Target string

	DryRun bool

	Commands    bool
	MCPServers  bool
	Preferences bool
	Skills      bool
	Hooks       bool
	Agents      bool

	// SkipExistingCommands never overwrites a command the target already has,
	// even when the content differs.
	SkipExistingCommands bool

	// IncludeMarketplace adds plugin marketplace commands to the source read.
	IncludeMarketplace bool
}

// Enabled reports whether domain d is switched on.
func (p SyncParams) Enabled(d Domain) bool {
	switch d {
	case DomainCommands:
		return p.Commands
	case DomainMCPServers:
		return p.MCPServers
	case DomainPreferences:
		return p.Preferences
	case DomainSkills:
		return p.Skills
	case DomainHooks:
		return p.Hooks
	case DomainAgents:
		return p.Agents
	default:
		return false
	}
}

// WithAllDomains returns p with every domain enabled.
func (p SyncParams) WithAllDomains() SyncParams {
	p.Commands = true
	p.MCPServers = true
	p.Preferences = true
	p.Skills = true
	p.Hooks = true
	p.Agents = true
	return p
}

// WithOnly returns p with exactly domain d enabled.
func (p SyncParams) WithOnly(d Domain) SyncParams {
	p.Commands = d == DomainCommands
	p.MCPServers = d == DomainMCPServers
	p.Preferences = d == DomainPreferences
	p.Skills = d == DomainSkills
	p.Hooks = d == DomainHooks
	p.Agents = d == DomainAgents
	return p
}
