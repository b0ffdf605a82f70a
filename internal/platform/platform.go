package platform

import "github.com/thoreinstein/aisync/internal/model"

// Agent is the contract every ecosystem adapter implements. An adapter is
// bound to one configuration root at construction time.
//
// Supports is advisory: operations for an unsupported domain return empty
// results or an empty report instead of an error, so callers never branch
// on the ecosystem.
type Agent interface {
	// Name returns the platform identifier (claude, codex, copilot).
	Name() string

	// DisplayName returns a human-readable platform name.
	DisplayName() string

	// Root returns the configuration root the adapter reads and writes.
	Root() string

	// Supports returns the adapter's capability matrix.
	Supports() model.FieldSupport

	ReadCommands(opts model.ReadOptions) ([]model.Command, error)
	ReadMCPServers() ([]model.MCPServer, error)
	ReadPreferences() (model.Preferences, error)
	ReadSkills() ([]model.Command, error)
	ReadHooks() ([]model.Command, error)
	ReadAgents() ([]model.Command, error)

	WriteCommands(items []model.Command, opts model.WriteOptions) (model.WriteReport, error)
	WriteMCPServers(servers []model.MCPServer, opts model.WriteOptions) (model.WriteReport, error)
	WritePreferences(prefs model.Preferences, opts model.WriteOptions) (model.WriteReport, error)
	WriteSkills(items []model.Command, opts model.WriteOptions) (model.WriteReport, error)
	WriteHooks(items []model.Command, opts model.WriteOptions) (model.WriteReport, error)
	WriteAgents(items []model.Command, opts model.WriteOptions) (model.WriteReport, error)
}

// SettingsOwner is implemented by agents that merge into shared settings
// files. Those files are snapshotted before a sync rewrites them.
type SettingsOwner interface {
	SettingsFiles() []string
}
