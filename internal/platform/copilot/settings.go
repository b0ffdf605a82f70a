package copilot

import (
	"log/slog"

	"github.com/thoreinstein/aisync/internal/assetfs"
	"github.com/thoreinstein/aisync/internal/model"
)

const (
	keyMCPServers = "mcpServers"
	keyModel      = "model"
)

// SettingsManager owns mcpServers in mcp-config.json and model in
// config.json. trusted_folders, allowed_urls and every other key are
// written back as read.
type SettingsManager struct {
	paths  *CopilotPaths
	logger *slog.Logger
}

// NewSettingsManager creates a new SettingsManager instance.
func NewSettingsManager(paths *CopilotPaths, logger *slog.Logger) *SettingsManager {
	return &SettingsManager{paths: paths, logger: logger}
}

// ReadMCPServers returns the configured servers sorted by name.
func (m *SettingsManager) ReadMCPServers() ([]model.MCPServer, error) {
	return assetfs.ReadServers[MCPServer](m.logger, m.paths.MCPConfigPath(), keyMCPServers)
}

// WriteMCPServers merges servers into mcpServers.
func (m *SettingsManager) WriteMCPServers(servers []model.MCPServer, opts model.WriteOptions) (model.WriteReport, error) {
	return assetfs.WriteServers[MCPServer](m.paths.MCPConfigPath(), keyMCPServers, servers, opts, FromModel)
}

// ReadPreferences returns the model key of config.json.
func (m *SettingsManager) ReadPreferences() (model.Preferences, error) {
	doc, err := assetfs.LoadJSON(m.paths.ConfigPath())
	if err != nil {
		return model.Preferences{}, err
	}
	var prefs model.Preferences
	if _, err := doc.Decode(keyModel, &prefs.Model); err != nil {
		return model.Preferences{}, err
	}
	return prefs, nil
}

// WritePreferences sets the model key of config.json. An unset model
// writes nothing.
func (m *SettingsManager) WritePreferences(prefs model.Preferences, opts model.WriteOptions) (model.WriteReport, error) {
	var report model.WriteReport
	if prefs.Model == "" {
		return report, nil
	}

	doc, err := assetfs.LoadJSON(m.paths.ConfigPath())
	if err != nil {
		return report, err
	}
	var current string
	if _, err := doc.Decode(keyModel, &current); err != nil {
		return report, err
	}
	if current == prefs.Model {
		report.Record(keyModel, false)
		return report, nil
	}

	report.Record(keyModel, true)
	if opts.DryRun {
		return report, nil
	}
	if err := doc.Set(keyModel, prefs.Model); err != nil {
		return report, err
	}
	return report, doc.Save()
}
