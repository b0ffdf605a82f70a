package claude

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thoreinstein/aisync/internal/logging"
)

func newTestPlatform(t *testing.T) (*ClaudePlatform, string) {
	t.Helper()
	root := t.TempDir()
	return NewClaudePlatform(root, WithLogger(logging.ForTest(t))), root
}

func writeTestFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating parent of %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", rel, err)
	}
	return path
}

func setMTime(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("setting mtime of %s: %v", path, err)
	}
}

func readTestFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}
