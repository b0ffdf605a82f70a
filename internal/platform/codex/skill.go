package codex

import (
	"log/slog"

	"github.com/thoreinstein/aisync/internal/assetfs"
	"github.com/thoreinstein/aisync/internal/model"
)

// SkillManager reads and writes skills. Codex loads skills one directory
// level deep, so nested names are flattened on write.
type SkillManager struct {
	paths  *CodexPaths
	logger *slog.Logger
}

// NewSkillManager creates a new SkillManager instance.
func NewSkillManager(paths *CodexPaths, logger *slog.Logger) *SkillManager {
	return &SkillManager{paths: paths, logger: logger}
}

// Read returns every skill under skills/.
func (m *SkillManager) Read() ([]model.Command, error) {
	skills, err := assetfs.ReadSkillDir(m.paths.SkillDir())
	if err != nil {
		return nil, err
	}
	return assetfs.MergeByName(skills, assetfs.NewestWins), nil
}

// Write stores category/my-skill as skills/category-my-skill/SKILL.md.
func (m *SkillManager) Write(items []model.Command, opts model.WriteOptions) (model.WriteReport, error) {
	return assetfs.WriteSkillSet(m.logger, m.paths.SkillDir(), assetfs.FlattenedNames, items, opts)
}
