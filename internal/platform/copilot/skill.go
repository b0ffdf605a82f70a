package copilot

import (
	"log/slog"

	"github.com/thoreinstein/aisync/internal/assetfs"
	"github.com/thoreinstein/aisync/internal/model"
)

// SkillManager reads and writes skills.
type SkillManager struct {
	paths  *CopilotPaths
	logger *slog.Logger
}

// NewSkillManager creates a new SkillManager instance.
func NewSkillManager(paths *CopilotPaths, logger *slog.Logger) *SkillManager {
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

// Write stores each skill as skills/<nested/name>/SKILL.md.
func (m *SkillManager) Write(items []model.Command, opts model.WriteOptions) (model.WriteReport, error) {
	return assetfs.WriteSkillSet(m.logger, m.paths.SkillDir(), assetfs.NestedNames, items, opts)
}
