package claude

import (
	"testing"
	"time"

	"github.com/thoreinstein/aisync/internal/model"
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestSkillManager_Read(t *testing.T) {
	p, root := newTestPlatform(t)

	writeTestFile(t, root, "skills/category/my-skill/SKILL.md", "nested")
	writeTestFile(t, root, "skills/category/my-skill/reference.md", "resource of my-skill")
	writeTestFile(t, root, "skills/single.md", "single file")
	writeTestFile(t, root, "skills/.hidden/SKILL.md", "hidden")

	user := writeTestFile(t, root, "skills/lint/SKILL.md", "user lint")
	plugin := writeTestFile(t, root, "plugins/cache/acme/tools/1.0.0/skills/lint/SKILL.md", "plugin lint")
	writeTestFile(t, root, "plugins/cache/acme/tools/1.0.0/skills/format/SKILL.md", "plugin format")
	writeTestFile(t, root, "plugins/cache/acme/tools/1.0.0/commands/x.md", "not a skill")

	setMTime(t, user, testTime)
	setMTime(t, plugin, testTime.Add(time.Hour))

	skills, err := p.ReadSkills()
	if err != nil {
		t.Fatalf("ReadSkills() error = %v", err)
	}

	got := map[string]string{}
	for _, s := range skills {
		got[s.Name] = string(s.Content)
	}
	want := map[string]string{
		"category/my-skill": "nested",
		"single":            "single file",
		"lint":              "plugin lint",
		"format":            "plugin format",
	}
	if len(got) != len(want) {
		t.Fatalf("ReadSkills() = %v, want %v", got, want)
	}
	for name, content := range want {
		if got[name] != content {
			t.Errorf("%s = %q, want %q", name, got[name], content)
		}
	}
}

func TestSkillManager_Read_NewerUserSkillWins(t *testing.T) {
	p, root := newTestPlatform(t)

	user := writeTestFile(t, root, "skills/lint/SKILL.md", "user lint")
	plugin := writeTestFile(t, root, "plugins/cache/acme/skills/lint/SKILL.md", "plugin lint")
	setMTime(t, user, testTime.Add(time.Hour))
	setMTime(t, plugin, testTime)

	skills, err := p.ReadSkills()
	if err != nil {
		t.Fatalf("ReadSkills() error = %v", err)
	}
	if len(skills) != 1 || string(skills[0].Content) != "user lint" {
		t.Errorf("ReadSkills() = %+v, want the newer user skill", skills)
	}
}

func TestSkillManager_Write(t *testing.T) {
	p, root := newTestPlatform(t)
	items := []model.Command{
		model.NewCommand("category/my-skill", []byte("nested"), "", testTime),
		model.NewCommand("../../../etc/evil", []byte("contained"), "", testTime),
	}

	report, err := p.WriteSkills(items, model.WriteOptions{})
	if err != nil {
		t.Fatalf("WriteSkills() error = %v", err)
	}
	if report.Written != 2 {
		t.Errorf("Written = %d, want 2", report.Written)
	}
	if got := readTestFile(t, root, "skills/category/my-skill/SKILL.md"); got != "nested" {
		t.Errorf("nested skill = %q", got)
	}
	if got := readTestFile(t, root, "skills/etc/evil/SKILL.md"); got != "contained" {
		t.Errorf("sanitized skill = %q", got)
	}
}
