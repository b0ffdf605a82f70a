package claude

import (
	"log/slog"

	"github.com/thoreinstein/aisync/internal/assetfs"
	"github.com/thoreinstein/aisync/internal/model"
)

// SkillManager reads and writes skills.
type SkillManager struct {
	paths  *ClaudePaths
	logger *slog.Logger
}

// NewSkillManager creates a new SkillManager instance.
func NewSkillManager(paths *ClaudePaths, logger *slog.Logger) *SkillManager {
	return &SkillManager{paths: paths, logger: logger}
}

// Read returns user skills and plugin-cache skills. When both define the
// same name the more recently modified one wins.
func (m *SkillManager) Read() ([]model.Command, error) {
	user, err := assetfs.ReadSkillDir(m.paths.SkillDir())
	if err != nil {
		return nil, err
	}

	found, err := assetfs.Walk(m.paths.PluginCacheDir(), assetfs.WalkOptions{
		Match: func(rel string) bool {
			_, ok := assetfs.PluginSkillRel(rel)
			return ok && assetfs.IsMarkdown(rel)
		},
	})
	if err != nil {
		return nil, err
	}
	plugin, err := assetfs.LoadSkills(found, func(f assetfs.Found) string {
		rel, _ := assetfs.PluginSkillRel(f.Rel)
		return rel
	})
	if err != nil {
		return nil, err
	}

	merged := assetfs.MergeByName(append(user, plugin...), assetfs.NewestWins)
	m.logger.Debug("read skills", "root", m.paths.Root(), "user", len(user), "plugin", len(plugin), "unique", len(merged))
	return merged, nil
}

// Write stores each skill as skills/<nested/name>/SKILL.md.
func (m *SkillManager) Write(items []model.Command, opts model.WriteOptions) (model.WriteReport, error) {
	return assetfs.WriteSkillSet(m.logger, m.paths.SkillDir(), assetfs.NestedNames, items, opts)
}
