package platform_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thoreinstein/aisync/internal/model"
	"github.com/thoreinstein/aisync/internal/platform"
	"github.com/thoreinstein/aisync/internal/platform/platformtest"
)

func TestDetect(t *testing.T) {
	dir := t.TempDir()

	installed := platformtest.NewMockAgent("claude", model.FieldSupport{Commands: true})
	installed.AgentRoot = dir

	missing := platformtest.NewMockAgent("codex", model.FieldSupport{})
	missing.AgentRoot = filepath.Join(dir, "missing")

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	notDir := platformtest.NewMockAgent("copilot", model.FieldSupport{})
	notDir.AgentRoot = file

	results := platform.DetectAll([]platform.Agent{installed, missing, notDir})
	if len(results) != 3 {
		t.Fatalf("DetectAll() returned %d results, want 3", len(results))
	}

	if !results[0].Installed() || results[0].Root != dir || !results[0].Supports.Commands {
		t.Errorf("installed result = %+v", results[0])
	}
	if results[1].Status != platform.StatusNotInstalled {
		t.Errorf("missing root status = %s, want not_installed", results[1].Status)
	}
	if results[2].Installed() {
		t.Error("a regular file is not an installation")
	}
}
