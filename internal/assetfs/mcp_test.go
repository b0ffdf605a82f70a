package assetfs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/aisync/internal/logging"
	"github.com/thoreinstein/aisync/internal/model"
)

// stdioEntry is a minimal platform entry: a command plus a key the
// canonical form does not model.
type stdioEntry struct {
	Command string `json:"command"`
	Note    string `json:"note,omitempty"`
}

func (e *stdioEntry) ToModel(name string) model.MCPServer {
	return model.MCPServer{Name: name, Transport: model.TransportStdio, Command: e.Command, Enabled: true}
}

func buildStdioEntry(srv model.MCPServer, existing *stdioEntry) *stdioEntry {
	out := &stdioEntry{Command: srv.Command}
	if existing != nil {
		out.Note = existing.Note
	}
	return out
}

func stdio(name, command string) model.MCPServer {
	return model.MCPServer{Name: name, Transport: model.TransportStdio, Command: command, Enabled: true}
}

func TestReadServers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	writeFile(t, filepath.Dir(path), "settings.json", `{
  "servers": {
    "zeta": {"command": "z"},
    "alpha": {"command": "a"},
    "broken": [1, 2],
    "empty": {}
  }
}`)

	servers, err := ReadServers[stdioEntry](logging.ForTest(t), path, "servers")
	require.NoError(t, err)
	require.Len(t, servers, 2)
	assert.Equal(t, "alpha", servers[0].Name)
	assert.Equal(t, "zeta", servers[1].Name)

	missing, err := ReadServers[stdioEntry](logging.ForTest(t), filepath.Join(t.TempDir(), "none.json"), "servers")
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestWriteServers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	writeFile(t, dir, "settings.json", `{
  "servers": {
    "same": {"command": "same"},
    "old": {"command": "v1", "note": "keep me"},
    "other": {"command": "untouched"}
  },
  "theme": "dark"
}`)

	servers := []model.MCPServer{stdio("old", "v2"), stdio("same", "same"), stdio("new", "fresh")}

	dry, err := WriteServers[stdioEntry](path, "servers", servers, model.WriteOptions{DryRun: true}, buildStdioEntry)
	require.NoError(t, err)
	assert.Equal(t, 2, dry.Written)
	before, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(before), `"v1"`, "dry run must not modify")

	report, err := WriteServers[stdioEntry](path, "servers", servers, model.WriteOptions{}, buildStdioEntry)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Written)
	assert.Equal(t, []string{"same"}, report.UnchangedItems())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc struct {
		Servers map[string]stdioEntry `json:"servers"`
		Theme   string                `json:"theme"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "dark", doc.Theme)
	assert.Equal(t, stdioEntry{Command: "v2", Note: "keep me"}, doc.Servers["old"])
	assert.Equal(t, stdioEntry{Command: "fresh"}, doc.Servers["new"])
	assert.Equal(t, stdioEntry{Command: "untouched"}, doc.Servers["other"])

	again, err := WriteServers[stdioEntry](path, "servers", servers, model.WriteOptions{}, buildStdioEntry)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Written)

	t.Run("no servers leaves the file alone", func(t *testing.T) {
		fresh := filepath.Join(t.TempDir(), "settings.json")
		report, err := WriteServers[stdioEntry](fresh, "servers", nil, model.WriteOptions{}, buildStdioEntry)
		require.NoError(t, err)
		assert.Equal(t, model.WriteReport{}, report)
		assert.NoFileExists(t, fresh)
	})
}
