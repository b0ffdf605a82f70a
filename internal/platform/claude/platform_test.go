package claude

import (
	"testing"

	"github.com/thoreinstein/aisync/internal/model"
	"github.com/thoreinstein/aisync/internal/paths"
)

func TestClaudePlatform_Identity(t *testing.T) {
	p, root := newTestPlatform(t)

	if p.Name() != paths.PlatformClaude {
		t.Errorf("Name() = %q, want %q", p.Name(), paths.PlatformClaude)
	}
	if p.Root() != root {
		t.Errorf("Root() = %q, want %q", p.Root(), root)
	}
	for _, d := range model.Domains() {
		if !p.Supports().Has(d) {
			t.Errorf("Supports().Has(%s) = false", d)
		}
	}
}
