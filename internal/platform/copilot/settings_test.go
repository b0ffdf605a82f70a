package copilot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/aisync/internal/model"
)

func decodeFile(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestSettingsManager_MCPServers(t *testing.T) {
	p, root := newTestPlatform(t)
	writeTestFile(t, root, "mcp-config.json", `{
  "mcpServers": {
    "github": {"type": "local", "command": "gh-mcp", "tools": ["search"], "timeout": 5},
    "legacy": {"type": "stdio", "command": "legacy"},
    "events": {"type": "sse", "url": "https://events.example.com"},
    "bad": [1, 2]
  },
  "version": 2
}`)

	servers, err := p.ReadMCPServers()
	require.NoError(t, err)
	require.Len(t, servers, 3)
	assert.Equal(t, "events", servers[0].Name)
	assert.Equal(t, model.TransportHTTP, servers[0].Transport)
	assert.Equal(t, model.TransportStdio, servers[1].Transport)
	assert.Equal(t, model.TransportStdio, servers[2].Transport)

	report, err := p.WriteMCPServers([]model.MCPServer{
		{Name: "github", Transport: model.TransportStdio, Command: "gh-mcp", Args: []string{"--v2"}, Enabled: true},
		{Name: "fresh", Transport: model.TransportStdio, Command: "fresh", Enabled: true},
		{Name: "remote", Transport: model.TransportHTTP, URL: "https://r.example.com", Enabled: false},
		{Name: "events", Transport: model.TransportHTTP, URL: "https://events.example.com", Enabled: true},
	}, model.WriteOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Written)
	assert.Equal(t, []string{"events"}, report.UnchangedItems())

	doc := decodeFile(t, filepath.Join(root, "mcp-config.json"))
	assert.InDelta(t, 2, doc["version"], 0)
	entries := doc["mcpServers"].(map[string]any)
	assert.Contains(t, entries, "bad")
	assert.Contains(t, entries, "legacy")

	gh := entries["github"].(map[string]any)
	assert.Equal(t, "local", gh["type"])
	assert.Equal(t, []any{"search"}, gh["tools"], "existing tool lists are kept")
	assert.Equal(t, []any{"--v2"}, gh["args"])
	assert.InDelta(t, 5, gh["timeout"], 0)

	fresh := entries["fresh"].(map[string]any)
	assert.Equal(t, "local", fresh["type"])
	assert.Equal(t, []any{"*"}, fresh["tools"])

	remote := entries["remote"].(map[string]any)
	assert.Equal(t, "http", remote["type"])
	assert.Equal(t, true, remote["disabled"])
}

func TestSettingsManager_Preferences(t *testing.T) {
	p, root := newTestPlatform(t)
	writeTestFile(t, root, "config.json", `{
  "model": "gpt-5",
  "trusted_folders": ["/work"],
  "allowed_urls": ["https://example.com"],
  "denied_urls": []
}`)

	prefs, err := p.ReadPreferences()
	require.NoError(t, err)
	assert.Equal(t, "gpt-5", prefs.Model)

	report, err := p.WritePreferences(model.Preferences{Model: "claude-sonnet-4.5"}, model.WriteOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Written)

	doc := decodeFile(t, filepath.Join(root, "config.json"))
	assert.Equal(t, "claude-sonnet-4.5", doc["model"])
	assert.Equal(t, []any{"/work"}, doc["trusted_folders"])
	assert.Equal(t, []any{"https://example.com"}, doc["allowed_urls"])
	assert.Equal(t, []any{}, doc["denied_urls"])

	_, err = os.Stat(filepath.Join(root, "mcp-config.json"))
	assert.True(t, os.IsNotExist(err), "preferences never touch mcp-config.json")
}

func TestCopilotPlatform_Unsupported(t *testing.T) {
	p, root := newTestPlatform(t)

	assert.False(t, p.Supports().Commands)
	assert.False(t, p.Supports().Hooks)

	report, err := p.WriteCommands([]model.Command{model.NewCommand("deploy", []byte("x"), "", testTime)}, model.WriteOptions{})
	require.NoError(t, err)
	assert.Equal(t, model.WriteReport{}, report)

	cmds, err := p.ReadCommands(model.ReadOptions{})
	require.NoError(t, err)
	assert.Empty(t, cmds)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSkills(t *testing.T) {
	p, root := newTestPlatform(t)

	_, err := p.WriteSkills([]model.Command{
		model.NewCommand("category/my-skill", []byte("nested"), "", testTime),
	}, model.WriteOptions{})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, "skills", "category", "my-skill", "SKILL.md"))
	require.NoError(t, err)

	skills, err := p.ReadSkills()
	require.NoError(t, err)
	assert.Equal(t, []string{"category/my-skill"}, model.Names(skills))
}

func TestSettingsManager_WriteMCPServers_KeepsType(t *testing.T) {
	p, root := newTestPlatform(t)
	writeTestFile(t, root, "mcp-config.json", `{
  "mcpServers": {
    "events": {"type": "sse", "url": "https://events.example.com"},
    "legacy": {"type": "stdio", "command": "legacy"}
  }
}`)

	report, err := p.WriteMCPServers([]model.MCPServer{
		{Name: "events", Transport: model.TransportHTTP, URL: "https://events.example.com/v2", Enabled: true},
		{Name: "legacy", Transport: model.TransportStdio, Command: "legacy", Args: []string{"--new"}, Enabled: true},
	}, model.WriteOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Written)

	entries := decodeFile(t, filepath.Join(root, "mcp-config.json"))["mcpServers"].(map[string]any)
	assert.Equal(t, "sse", entries["events"].(map[string]any)["type"])
	assert.Equal(t, "stdio", entries["legacy"].(map[string]any)["type"])

	assert.Equal(t, typeHTTP, FromModel(model.MCPServer{Name: "events", Transport: model.TransportHTTP, URL: "https://x"}, &MCPServer{Type: typeLocal, Command: "x"}).Type)
}
