package codex

import (
	"log/slog"
	"slices"
	"sort"

	"github.com/thoreinstein/aisync/internal/assetfs"
	"github.com/thoreinstein/aisync/internal/errors"
	"github.com/thoreinstein/aisync/internal/model"
)

const (
	keyMCPServers = "mcp_servers"
	keyModel      = "model"
)

// ConfigManager owns the model key and the mcp_servers tables of
// config.toml. Every other key and table is written back as read.
type ConfigManager struct {
	paths  *CodexPaths
	logger *slog.Logger
}

// NewConfigManager creates a new ConfigManager instance.
func NewConfigManager(paths *CodexPaths, logger *slog.Logger) *ConfigManager {
	return &ConfigManager{paths: paths, logger: logger}
}

func (m *ConfigManager) servers(doc *assetfs.TOMLDocument) (map[string]any, error) {
	table, _, err := doc.Table(keyMCPServers)
	if err != nil {
		return nil, err
	}
	if table == nil {
		table = make(map[string]any)
	}
	return table, nil
}

// ReadMCPServers returns the configured servers sorted by name. Entries of
// the wrong shape are skipped with a warning.
func (m *ConfigManager) ReadMCPServers() ([]model.MCPServer, error) {
	doc, err := assetfs.LoadTOML(m.paths.ConfigPath())
	if err != nil {
		return nil, err
	}
	tables, err := m.servers(doc)
	if err != nil {
		return nil, err
	}

	servers := make([]model.MCPServer, 0, len(tables))
	for name, v := range tables {
		table, ok := v.(map[string]any)
		if !ok {
			m.logger.Warn("skipping malformed MCP server", "server", name, "path", doc.Path(), "error", "not a table")
			continue
		}
		srv, err := serverFromTable(name, table)
		if err != nil {
			m.logger.Warn("skipping malformed MCP server", "server", name, "path", doc.Path(), "error", err)
			continue
		}
		if !srv.Valid() {
			m.logger.Warn("skipping incomplete MCP server", "server", name, "path", doc.Path(), "transport", srv.Transport)
			continue
		}
		servers = append(servers, srv)
	}

	sort.Slice(servers, func(i, j int) bool { return servers[i].Name < servers[j].Name })
	return servers, nil
}

// WriteMCPServers merges servers into the mcp_servers tables.
func (m *ConfigManager) WriteMCPServers(servers []model.MCPServer, opts model.WriteOptions) (model.WriteReport, error) {
	var report model.WriteReport
	if len(servers) == 0 {
		return report, nil
	}

	doc, err := assetfs.LoadTOML(m.paths.ConfigPath())
	if err != nil {
		return report, err
	}
	tables, err := m.servers(doc)
	if err != nil {
		return report, err
	}

	ordered := slices.Clone(servers)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Name < ordered[j].Name })

	for _, srv := range ordered {
		existing, _ := tables[srv.Name].(map[string]any)
		if existing != nil {
			if current, err := serverFromTable(srv.Name, existing); err == nil && current.Equal(srv) {
				report.Record(srv.Name, false)
				continue
			}
		}
		tables[srv.Name] = serverToTable(srv, existing)
		report.Record(srv.Name, true)
	}

	if report.Written == 0 || opts.DryRun {
		return report, nil
	}
	doc.Set(keyMCPServers, tables)
	return report, doc.Save()
}

func (m *ConfigManager) currentModel(doc *assetfs.TOMLDocument) (string, error) {
	v, ok := doc.Get(keyModel)
	if !ok {
		return "", nil
	}
	s, isString := v.(string)
	if !isString {
		return "", errors.Mark(errors.Newf("%s: key %q is %T, not a string", doc.Path(), keyModel, v), assetfs.ErrMalformedSettings)
	}
	return s, nil
}

// ReadPreferences returns the top-level model key.
func (m *ConfigManager) ReadPreferences() (model.Preferences, error) {
	doc, err := assetfs.LoadTOML(m.paths.ConfigPath())
	if err != nil {
		return model.Preferences{}, err
	}
	current, err := m.currentModel(doc)
	if err != nil {
		return model.Preferences{}, err
	}
	return model.Preferences{Model: current}, nil
}

// WritePreferences sets the top-level model key. An unset model writes
// nothing.
func (m *ConfigManager) WritePreferences(prefs model.Preferences, opts model.WriteOptions) (model.WriteReport, error) {
	var report model.WriteReport
	if prefs.Model == "" {
		return report, nil
	}

	doc, err := assetfs.LoadTOML(m.paths.ConfigPath())
	if err != nil {
		return report, err
	}
	current, err := m.currentModel(doc)
	if err != nil {
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
	doc.Set(keyModel, prefs.Model)
	return report, doc.Save()
}
