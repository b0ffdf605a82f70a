package model

// Domain is one syncable asset category.
type Domain string

const (
	DomainCommands    Domain = "commands"
	DomainMCPServers  Domain = "mcp_servers"
	DomainPreferences Domain = "preferences"
	DomainSkills      Domain = "skills"
	DomainHooks       Domain = "hooks"
	DomainAgents      Domain = "agents"
)

// Domains returns every domain in sync order.
func Domains() []Domain {
	return []Domain{
		DomainCommands,
		DomainMCPServers,
		DomainPreferences,
		DomainSkills,
		DomainHooks,
		DomainAgents,
	}
}

// ParseDomain maps a caller-facing name to a Domain.
// Both the canonical name and the short aliases "mcp" and "prefs" are accepted.
func ParseDomain(s string) (Domain, bool) {
	switch s {
	case "mcp", "mcp-servers":
		return DomainMCPServers, true
	case "prefs":
		return DomainPreferences, true
	}
	for _, d := range Domains() {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// FieldSupport is an adapter's capability matrix.
type FieldSupport struct {
	Commands    bool
	MCPServers  bool
	Preferences bool
	Skills      bool
	Hooks       bool
	Agents      bool
}

// Has reports whether the domain is supported.
func (f FieldSupport) Has(d Domain) bool {
	switch d {
	case DomainCommands:
		return f.Commands
	case DomainMCPServers:
		return f.MCPServers
	case DomainPreferences:
		return f.Preferences
	case DomainSkills:
		return f.Skills
	case DomainHooks:
		return f.Hooks
	case DomainAgents:
		return f.Agents
	default:
		return false
	}
}

// ReadOptions tunes adapter read operations.
type ReadOptions struct {
	// IncludeMarketplace adds plugin marketplace trees to command discovery.
	IncludeMarketplace bool
}

// WriteOptions tunes adapter write operations.
type WriteOptions struct {
	// DryRun computes the report without touching the filesystem.
	DryRun bool
}
