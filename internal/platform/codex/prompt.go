package codex

import (
	"log/slog"

	"github.com/thoreinstein/aisync/internal/assetfs"
	"github.com/thoreinstein/aisync/internal/model"
)

// PromptManager maps commands onto Codex custom prompts.
type PromptManager struct {
	paths  *CodexPaths
	logger *slog.Logger
}

// NewPromptManager creates a new PromptManager instance.
func NewPromptManager(paths *CodexPaths, logger *slog.Logger) *PromptManager {
	return &PromptManager{paths: paths, logger: logger}
}

// Read returns every markdown prompt, named by stem. The first file found
// for a name wins.
func (m *PromptManager) Read() ([]model.Command, error) {
	found, err := assetfs.Walk(m.paths.PromptDir(), assetfs.WalkOptions{Match: assetfs.IsMarkdown})
	if err != nil {
		return nil, err
	}
	prompts, err := assetfs.Load(found, func(f assetfs.Found) string { return assetfs.Stem(f.Rel) })
	if err != nil {
		return nil, err
	}
	return assetfs.MergeByName(prompts, assetfs.FirstWins), nil
}

// Write stores each command as prompts/<name>.md.
func (m *PromptManager) Write(items []model.Command, opts model.WriteOptions) (model.WriteReport, error) {
	dir := m.paths.PromptDir()
	return assetfs.WriteSet(m.logger, items, opts, func(item model.Command) (assetfs.Target, error) {
		p, err := assetfs.Resolve(dir, assetfs.FlatNames, item.Name, ".md")
		if err != nil {
			return assetfs.Target{}, err
		}
		return assetfs.Target{Path: p, Content: item.Content}, nil
	})
}
