package claude

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/aisync/internal/assetfs"
	"github.com/thoreinstein/aisync/internal/errors"
	"github.com/thoreinstein/aisync/internal/model"
)

const sampleSettings = `{
  "theme": "dark",
  "permissions": {"allow": ["Bash(ls)"]},
  "model": "sonnet",
  "mcpServers": {
    "github": {
      "command": "npx",
      "args": ["-y", "@modelcontextprotocol/server-github"],
      "env": {"GITHUB_TOKEN": "abc"},
      "timeout": 30
    },
    "remote": {"type": "sse", "url": "https://mcp.example.com/sse"},
    "implicit": {"url": "https://implicit.example.com"},
    "off": {"command": "off-server", "disabled": true},
    "broken": "not an object",
    "incomplete": {"type": "stdio"}
  }
}
`

func decodeSettings(t *testing.T, root string) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(readTestFile(t, root, "settings.json")), &out))
	return out
}

func TestSettingsManager_ReadMCPServers(t *testing.T) {
	p, root := newTestPlatform(t)
	writeTestFile(t, root, "settings.json", sampleSettings)

	servers, err := p.ReadMCPServers()
	require.NoError(t, err)

	byName := make(map[string]model.MCPServer)
	for _, s := range servers {
		byName[s.Name] = s
	}
	require.Len(t, byName, 4, "malformed and incomplete entries are skipped")

	gh := byName["github"]
	assert.Equal(t, model.TransportStdio, gh.Transport)
	assert.Equal(t, "npx", gh.Command)
	assert.Equal(t, []string{"-y", "@modelcontextprotocol/server-github"}, gh.Args)
	assert.Equal(t, map[string]string{"GITHUB_TOKEN": "abc"}, gh.Env)
	assert.True(t, gh.Enabled)

	assert.Equal(t, model.TransportHTTP, byName["remote"].Transport)
	assert.Equal(t, model.TransportHTTP, byName["implicit"].Transport)
	assert.False(t, byName["off"].Enabled)

	assert.Equal(t, []string{"github", "implicit", "off", "remote"}, []string{
		servers[0].Name, servers[1].Name, servers[2].Name, servers[3].Name,
	})
}

func TestSettingsManager_ReadMCPServers_NoFile(t *testing.T) {
	p, _ := newTestPlatform(t)
	servers, err := p.ReadMCPServers()
	require.NoError(t, err)
	assert.Empty(t, servers)
}

func TestSettingsManager_MalformedSettings(t *testing.T) {
	p, root := newTestPlatform(t)
	writeTestFile(t, root, "settings.json", "{not json")

	_, err := p.ReadMCPServers()
	require.Error(t, err)
	assert.True(t, errors.Is(err, assetfs.ErrMalformedSettings))

	_, err = p.WritePreferences(model.Preferences{Model: "opus"}, model.WriteOptions{})
	require.Error(t, err)
	assert.Equal(t, "{not json", readTestFile(t, root, "settings.json"), "a malformed file is never overwritten")
}

func TestSettingsManager_WriteMCPServers(t *testing.T) {
	p, root := newTestPlatform(t)
	writeTestFile(t, root, "settings.json", sampleSettings)

	servers := []model.MCPServer{
		{Name: "github", Transport: model.TransportStdio, Command: "gh-mcp", Enabled: true},
		{Name: "remote", Transport: model.TransportHTTP, URL: "https://mcp.example.com/sse", Enabled: true},
		{Name: "new", Transport: model.TransportHTTP, URL: "https://new.example.com", Headers: map[string]string{"X-Team": "a"}, Enabled: true},
	}

	report, err := p.WriteMCPServers(servers, model.WriteOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Written)
	assert.Equal(t, []string{"remote"}, report.UnchangedItems())

	doc := decodeSettings(t, root)
	assert.Equal(t, "dark", doc["theme"])
	assert.Equal(t, "sonnet", doc["model"])
	assert.Contains(t, doc, "permissions")

	entries := doc["mcpServers"].(map[string]any)
	gh := entries["github"].(map[string]any)
	assert.Equal(t, "stdio", gh["type"])
	assert.Equal(t, "gh-mcp", gh["command"])
	assert.InDelta(t, 30, gh["timeout"], 0, "unknown per-entry keys survive")
	assert.NotContains(t, gh, "args")

	remote := entries["remote"].(map[string]any)
	assert.Equal(t, "sse", remote["type"], "unchanged entries are not rewritten")

	created := entries["new"].(map[string]any)
	assert.Equal(t, "http", created["type"])
	assert.Equal(t, map[string]any{"X-Team": "a"}, created["headers"])

	assert.Contains(t, entries, "off", "servers absent from the input are kept")
	assert.Contains(t, entries, "broken")

	report, err = p.WriteMCPServers(servers, model.WriteOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Written)
	assert.Equal(t, []string{"github", "new", "remote"}, report.UnchangedItems())
}

func TestSettingsManager_WriteMCPServers_Disabled(t *testing.T) {
	p, root := newTestPlatform(t)

	_, err := p.WriteMCPServers([]model.MCPServer{
		{Name: "quiet", Transport: model.TransportStdio, Command: "q", Enabled: false},
	}, model.WriteOptions{})
	require.NoError(t, err)

	entries := decodeSettings(t, root)["mcpServers"].(map[string]any)
	assert.Equal(t, true, entries["quiet"].(map[string]any)["disabled"])

	servers, err := p.ReadMCPServers()
	require.NoError(t, err)
	require.Len(t, servers, 1)
	assert.False(t, servers[0].Enabled)
}

func TestSettingsManager_WriteMCPServers_DryRun(t *testing.T) {
	p, root := newTestPlatform(t)

	report, err := p.WriteMCPServers([]model.MCPServer{
		{Name: "x", Transport: model.TransportStdio, Command: "x", Enabled: true},
	}, model.WriteOptions{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Written)

	_, err = os.Stat(filepath.Join(root, "settings.json"))
	assert.True(t, os.IsNotExist(err), "dry run must not create settings.json")
}

func TestSettingsManager_Preferences(t *testing.T) {
	p, root := newTestPlatform(t)
	writeTestFile(t, root, "settings.json", sampleSettings)

	prefs, err := p.ReadPreferences()
	require.NoError(t, err)
	assert.Equal(t, "sonnet", prefs.Model)

	report, err := p.WritePreferences(model.Preferences{}, model.WriteOptions{})
	require.NoError(t, err)
	assert.Equal(t, model.WriteReport{}, report)

	report, err = p.WritePreferences(model.Preferences{Model: "sonnet"}, model.WriteOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"model"}, report.UnchangedItems())

	report, err = p.WritePreferences(model.Preferences{Model: "opus"}, model.WriteOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Written)

	doc := decodeSettings(t, root)
	assert.Equal(t, "opus", doc["model"])
	assert.Equal(t, "dark", doc["theme"])
	assert.Len(t, doc["mcpServers"].(map[string]any), 6)
}

func TestFromModel_KeepsExistingType(t *testing.T) {
	remote := model.MCPServer{Name: "remote", Transport: model.TransportHTTP, URL: "https://mcp.example.com/v2", Enabled: true}
	local := model.MCPServer{Name: "local", Transport: model.TransportStdio, Command: "srv", Enabled: true}

	tests := []struct {
		name     string
		srv      model.MCPServer
		existing *MCPServer
		want     string
	}{
		{"new remote", remote, nil, typeHTTP},
		{"sse stays sse", remote, &MCPServer{Type: typeSSE, URL: "https://mcp.example.com/sse"}, typeSSE},
		{"transport change", local, &MCPServer{Type: typeSSE, URL: "https://mcp.example.com/sse"}, typeStdio},
		{"implicit type", local, &MCPServer{Command: "old"}, typeStdio},
		{"unknown type", local, &MCPServer{Type: "ws", Command: "old"}, typeStdio},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromModel(tt.srv, tt.existing).Type)
		})
	}
}

func TestSettingsManager_WriteMCPServers_KeepsSSE(t *testing.T) {
	p, root := newTestPlatform(t)
	writeTestFile(t, root, "settings.json", `{"mcpServers": {"remote": {"type": "sse", "url": "https://mcp.example.com/sse"}}}`)

	report, err := p.WriteMCPServers([]model.MCPServer{
		{Name: "remote", Transport: model.TransportHTTP, URL: "https://mcp.example.com/v2", Enabled: true},
	}, model.WriteOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Written)

	remote := decodeSettings(t, root)["mcpServers"].(map[string]any)["remote"].(map[string]any)
	assert.Equal(t, "sse", remote["type"])
	assert.Equal(t, "https://mcp.example.com/v2", remote["url"])
}
