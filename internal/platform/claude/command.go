package claude

import (
	"log/slog"
	"path"

	"github.com/thoreinstein/aisync/internal/assetfs"
	"github.com/thoreinstein/aisync/internal/model"
)

// CommandManager reads and writes slash commands.
type CommandManager struct {
	paths  *ClaudePaths
	logger *slog.Logger
}

// NewCommandManager creates a new CommandManager with the given paths configuration.
func NewCommandManager(paths *ClaudePaths, logger *slog.Logger) *CommandManager {
	return &CommandManager{paths: paths, logger: logger}
}

// Read returns the commands of the core directory, the plugin cache and,
// with opts.IncludeMarketplace, the marketplaces. A name found in more than
// one place resolves to the core directory first, then the cache.
func (m *CommandManager) Read(opts model.ReadOptions) ([]model.Command, error) {
	core, err := m.scan(m.paths.CommandDir(), assetfs.IsMarkdown)
	if err != nil {
		return nil, err
	}

	all := core
	plugin, err := m.scan(m.paths.PluginCacheDir(), isPluginCommand)
	if err != nil {
		return nil, err
	}
	all = append(all, plugin...)

	if opts.IncludeMarketplace {
		market, err := m.scan(m.paths.MarketplaceDir(), isPluginCommand)
		if err != nil {
			return nil, err
		}
		all = append(all, market...)
	}

	merged := assetfs.MergeByName(all, assetfs.FirstWins)
	m.logger.Debug("read commands", "root", m.paths.Root(), "found", len(all), "unique", len(merged))
	return merged, nil
}

func (m *CommandManager) scan(dir string, match func(string) bool) ([]model.Command, error) {
	found, err := assetfs.Walk(dir, assetfs.WalkOptions{Match: match})
	if err != nil {
		return nil, err
	}
	return assetfs.Load(found, func(f assetfs.Found) string {
		return assetfs.Stem(f.Rel)
	})
}

// isPluginCommand accepts markdown files whose parent directory is
// literally named "commands".
func isPluginCommand(rel string) bool {
	return assetfs.IsMarkdown(rel) && path.Base(path.Dir(rel)) == "commands"
}

// Write stores each command as commands/<name>.md.
func (m *CommandManager) Write(items []model.Command, opts model.WriteOptions) (model.WriteReport, error) {
	dir := m.paths.CommandDir()
	return assetfs.WriteSet(m.logger, items, opts, func(item model.Command) (assetfs.Target, error) {
		p, err := assetfs.Resolve(dir, assetfs.FlatNames, item.Name, ".md")
		if err != nil {
			return assetfs.Target{}, err
		}
		return assetfs.Target{Path: p, Content: item.Content}, nil
	})
}
