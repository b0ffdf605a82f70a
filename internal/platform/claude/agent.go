package claude

import (
	"log/slog"

	"github.com/thoreinstein/aisync/internal/assetfs"
	"github.com/thoreinstein/aisync/internal/model"
)

// AgentManager reads and writes sub-agent definitions. Documents are
// written verbatim.
type AgentManager struct {
	paths  *ClaudePaths
	logger *slog.Logger
}

// NewAgentManager creates a new AgentManager instance.
func NewAgentManager(paths *ClaudePaths, logger *slog.Logger) *AgentManager {
	return &AgentManager{paths: paths, logger: logger}
}

// Read returns every markdown file under agents/, named by stem.
func (m *AgentManager) Read() ([]model.Command, error) {
	found, err := assetfs.Walk(m.paths.AgentDir(), assetfs.WalkOptions{Match: assetfs.IsMarkdown})
	if err != nil {
		return nil, err
	}
	agents, err := assetfs.Load(found, func(f assetfs.Found) string { return assetfs.Stem(f.Rel) })
	if err != nil {
		return nil, err
	}
	return assetfs.MergeByName(agents, assetfs.NewestWins), nil
}

// Write stores each agent as agents/<name>.md.
func (m *AgentManager) Write(items []model.Command, opts model.WriteOptions) (model.WriteReport, error) {
	dir := m.paths.AgentDir()
	return assetfs.WriteSet(m.logger, items, opts, func(item model.Command) (assetfs.Target, error) {
		p, err := assetfs.Resolve(dir, assetfs.FlatNames, item.Name, ".md")
		if err != nil {
			return assetfs.Target{}, err
		}
		return assetfs.Target{Path: p, Content: item.Content}, nil
	})
}
