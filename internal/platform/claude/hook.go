package claude

import (
	"log/slog"

	"github.com/thoreinstein/aisync/internal/assetfs"
	"github.com/thoreinstein/aisync/internal/model"
)

// HookManager reads and writes hook scripts. A hook's name is its file
// name including any extension.
type HookManager struct {
	paths  *ClaudePaths
	logger *slog.Logger
}

// NewHookManager creates a new HookManager instance.
func NewHookManager(paths *ClaudePaths, logger *slog.Logger) *HookManager {
	return &HookManager{paths: paths, logger: logger}
}

// Read returns every regular file under hooks/.
func (m *HookManager) Read() ([]model.Command, error) {
	found, err := assetfs.Walk(m.paths.HookDir(), assetfs.WalkOptions{})
	if err != nil {
		return nil, err
	}
	hooks, err := assetfs.Load(found, func(f assetfs.Found) string { return f.Base() })
	if err != nil {
		return nil, err
	}
	return assetfs.MergeByName(hooks, assetfs.NewestWins), nil
}

// Write stores each hook flat under hooks/. Scripts starting with "#!" are
// made executable.
func (m *HookManager) Write(items []model.Command, opts model.WriteOptions) (model.WriteReport, error) {
	dir := m.paths.HookDir()
	return assetfs.WriteSet(m.logger, items, opts, func(item model.Command) (assetfs.Target, error) {
		p, err := assetfs.Resolve(dir, assetfs.FlatNames, item.Name, "")
		if err != nil {
			return assetfs.Target{}, err
		}
		return assetfs.Target{Path: p, Content: item.Content, Perm: assetfs.ScriptPerm(item.Content)}, nil
	})
}
