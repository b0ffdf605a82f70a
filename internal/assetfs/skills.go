package assetfs

import (
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/aisync/internal/model"
)

// SkillFile is the entry document of a skill directory.
const SkillFile = "SKILL.md"

// SkillName derives a logical skill name from a slash-separated path
// relative to a skills root. SKILL.md takes its parent directory path;
// any other markdown file its stem. A SKILL.md directly at the root has no
// name.
func SkillName(rel string) string {
	if path.Base(rel) == SkillFile {
		dir := path.Dir(rel)
		if dir == "." {
			return ""
		}
		return dir
	}
	return Stem(rel)
}

// PluginSkillRel returns rel re-rooted at its nearest "skills" ancestor
// directory. ok is false when rel has no such ancestor.
func PluginSkillRel(rel string) (string, bool) {
	parts := strings.Split(rel, "/")
	for i := len(parts) - 2; i >= 0; i-- {
		if parts[i] == "skills" {
			return strings.Join(parts[i+1:], "/"), true
		}
	}
	return "", false
}

// LoadSkills loads the skills among found. relOf maps each file to its path
// relative to the skills root it belongs to; an empty result excludes the
// file. Markdown files sharing a directory with a SKILL.md belong to that
// skill and are not skills themselves.
func LoadSkills(found []Found, relOf func(Found) string) ([]model.Command, error) {
	skillDirs := make(map[string]bool)
	for _, f := range found {
		if f.Base() == SkillFile {
			skillDirs[filepath.Dir(f.Path)] = true
		}
	}

	return Load(found, func(f Found) string {
		rel := relOf(f)
		if rel == "" || !IsMarkdown(rel) {
			return ""
		}
		if f.Base() != SkillFile && skillDirs[filepath.Dir(f.Path)] {
			return ""
		}
		return SkillName(rel)
	})
}

// ReadSkillDir reads every skill under dir.
func ReadSkillDir(dir string) ([]model.Command, error) {
	found, err := Walk(dir, WalkOptions{Match: IsMarkdown})
	if err != nil {
		return nil, err
	}
	return LoadSkills(found, func(f Found) string { return f.Rel })
}

// WriteSkillSet writes each skill to <dir>/<name>/SKILL.md with names
// mapped through policy.
func WriteSkillSet(logger *slog.Logger, dir string, policy NamePolicy, items []model.Command, opts model.WriteOptions) (model.WriteReport, error) {
	return WriteSet(logger, items, opts, func(item model.Command) (Target, error) {
		p, err := Resolve(dir, policy, item.Name, "/"+SkillFile)
		if err != nil {
			return Target{}, err
		}
		return Target{Path: p, Content: item.Content}, nil
	})
}
