package codex

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/aisync/internal/assetfs"
	"github.com/thoreinstein/aisync/internal/errors"
	"github.com/thoreinstein/aisync/internal/logging"
	"github.com/thoreinstein/aisync/internal/model"
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

const sampleConfig = `model = "gpt-5"
approval_policy = "on-request"

[profiles.fast]
model = "gpt-5-mini"

[tui]
notifications = true

[mcp_servers.github]
command = "npx"
args = ["-y", "@modelcontextprotocol/server-github"]
startup_timeout_sec = 20

[mcp_servers.github.env]
GITHUB_TOKEN = "abc"

[mcp_servers.docs]
url = "https://docs.example.com/mcp"
enabled = false

[mcp_servers.numbers]
command = "x"
args = [1, 2]

[mcp_servers.empty]
startup_timeout_sec = 5
`

func newTestPlatform(t *testing.T) (*CodexPlatform, string) {
	t.Helper()
	root := t.TempDir()
	return NewCodexPlatform(root, WithLogger(logging.ForTest(t))), root
}

func writeTestFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readConfig(t *testing.T, root string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, "config.toml"))
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, toml.Unmarshal(data, &out))
	return out
}

func TestCodexPlatform_Supports(t *testing.T) {
	p, _ := newTestPlatform(t)
	s := p.Supports()
	assert.True(t, s.Commands)
	assert.True(t, s.MCPServers)
	assert.True(t, s.Preferences)
	assert.True(t, s.Skills)
	assert.False(t, s.Hooks)
	assert.False(t, s.Agents)

	hooks, err := p.ReadHooks()
	require.NoError(t, err)
	assert.Empty(t, hooks)

	report, err := p.WriteAgents([]model.Command{model.NewCommand("a", []byte("x"), "", testTime)}, model.WriteOptions{})
	require.NoError(t, err)
	assert.Equal(t, model.WriteReport{}, report)
}

func TestPromptManager(t *testing.T) {
	p, root := newTestPlatform(t)
	writeTestFile(t, root, "prompts/review.md", "Review")
	writeTestFile(t, root, "prompts/team/plan.md", "Plan")
	writeTestFile(t, root, "prompts/readme.txt", "ignored")

	cmds, err := p.ReadCommands(model.ReadOptions{IncludeMarketplace: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"plan", "review"}, model.Names(cmds))

	report, err := p.WriteCommands([]model.Command{
		model.NewCommand("deploy", []byte("Deploy"), "", testTime),
		model.NewCommand("review", []byte("Review"), "", testTime),
	}, model.WriteOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Written)
	assert.Equal(t, []string{"review"}, report.UnchangedItems())

	data, err := os.ReadFile(filepath.Join(root, "prompts", "deploy.md"))
	require.NoError(t, err)
	assert.Equal(t, "Deploy", string(data))
}

func TestSkillManager_FlattensNames(t *testing.T) {
	p, root := newTestPlatform(t)

	report, err := p.WriteSkills([]model.Command{
		model.NewCommand("category/my-skill", []byte("nested"), "", testTime),
	}, model.WriteOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Written)

	data, err := os.ReadFile(filepath.Join(root, "skills", "category-my-skill", "SKILL.md"))
	require.NoError(t, err)
	assert.Equal(t, "nested", string(data))

	skills, err := p.ReadSkills()
	require.NoError(t, err)
	assert.Equal(t, []string{"category-my-skill"}, model.Names(skills))
}

func TestConfigManager_ReadMCPServers(t *testing.T) {
	p, root := newTestPlatform(t)
	writeTestFile(t, root, "config.toml", sampleConfig)

	servers, err := p.ReadMCPServers()
	require.NoError(t, err)
	require.Len(t, servers, 2, "malformed and incomplete entries are skipped")

	docs, gh := servers[0], servers[1]
	assert.Equal(t, "docs", docs.Name)
	assert.Equal(t, model.TransportHTTP, docs.Transport)
	assert.Equal(t, "https://docs.example.com/mcp", docs.URL)
	assert.False(t, docs.Enabled)

	assert.Equal(t, "github", gh.Name)
	assert.Equal(t, model.TransportStdio, gh.Transport)
	assert.Equal(t, []string{"-y", "@modelcontextprotocol/server-github"}, gh.Args)
	assert.Equal(t, map[string]string{"GITHUB_TOKEN": "abc"}, gh.Env)
	assert.True(t, gh.Enabled)
}

func TestConfigManager_WriteMCPServers(t *testing.T) {
	p, root := newTestPlatform(t)
	writeTestFile(t, root, "config.toml", sampleConfig)

	servers := []model.MCPServer{
		{Name: "github", Transport: model.TransportStdio, Command: "gh-mcp", Enabled: true},
		{Name: "remote", Transport: model.TransportHTTP, URL: "https://r.example.com", Headers: map[string]string{"X-Team": "a"}, Enabled: true},
		{Name: "docs", Transport: model.TransportHTTP, URL: "https://docs.example.com/mcp", Enabled: false},
	}

	report, err := p.WriteMCPServers(servers, model.WriteOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Written)
	assert.Equal(t, []string{"docs"}, report.UnchangedItems())

	cfg := readConfig(t, root)
	assert.Equal(t, "gpt-5", cfg["model"])
	assert.Equal(t, "on-request", cfg["approval_policy"])
	assert.Contains(t, cfg, "profiles")
	assert.Contains(t, cfg, "tui")

	tables := cfg["mcp_servers"].(map[string]any)
	assert.Contains(t, tables, "numbers", "unrelated entries are kept")
	assert.Contains(t, tables, "empty")

	gh := tables["github"].(map[string]any)
	assert.Equal(t, "gh-mcp", gh["command"])
	assert.EqualValues(t, 20, gh["startup_timeout_sec"], "unowned keys survive")
	assert.NotContains(t, gh, "args")
	assert.NotContains(t, gh, "env")

	remote := tables["remote"].(map[string]any)
	assert.Equal(t, "https://r.example.com", remote["url"])
	assert.Equal(t, map[string]any{"X-Team": "a"}, remote["http_headers"])
	assert.NotContains(t, remote, "enabled")

	report, err = p.WriteMCPServers(servers, model.WriteOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Written)
}

func TestConfigManager_Preferences(t *testing.T) {
	p, root := newTestPlatform(t)

	prefs, err := p.ReadPreferences()
	require.NoError(t, err)
	assert.True(t, prefs.IsZero())

	writeTestFile(t, root, "config.toml", sampleConfig)

	report, err := p.WritePreferences(model.Preferences{Model: "gpt-5"}, model.WriteOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"model"}, report.UnchangedItems())

	report, err = p.WritePreferences(model.Preferences{Model: "o3"}, model.WriteOptions{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Written)
	assert.Equal(t, "gpt-5", readConfig(t, root)["model"], "dry run leaves the file alone")

	_, err = p.WritePreferences(model.Preferences{Model: "o3"}, model.WriteOptions{})
	require.NoError(t, err)

	cfg := readConfig(t, root)
	assert.Equal(t, "o3", cfg["model"])
	assert.Len(t, cfg["mcp_servers"].(map[string]any), 4)
	profile := cfg["profiles"].(map[string]any)["fast"].(map[string]any)
	assert.Equal(t, "gpt-5-mini", profile["model"])
}

func TestConfigManager_Malformed(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		prefsBroken   bool
		serversBroken bool
	}{
		{name: "invalid toml", content: "model = \n[[", prefsBroken: true, serversBroken: true},
		{name: "model not a string", content: "model = 3\n", prefsBroken: true},
		{name: "mcp_servers not a table", content: "mcp_servers = \"x\"\n", serversBroken: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, root := newTestPlatform(t)
			writeTestFile(t, root, "config.toml", tt.content)

			_, err := p.WriteMCPServers([]model.MCPServer{
				{Name: "x", Transport: model.TransportStdio, Command: "x", Enabled: true},
			}, model.WriteOptions{DryRun: true})
			assert.Equal(t, tt.serversBroken, errors.Is(err, assetfs.ErrMalformedSettings), "mcp error = %v", err)

			_, err = p.WritePreferences(model.Preferences{Model: "o3"}, model.WriteOptions{DryRun: true})
			assert.Equal(t, tt.prefsBroken, errors.Is(err, assetfs.ErrMalformedSettings), "preferences error = %v", err)
		})
	}
}
