package platform_test

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/thoreinstein/aisync/internal/errors"
	"github.com/thoreinstein/aisync/internal/model"
	"github.com/thoreinstein/aisync/internal/paths"
	"github.com/thoreinstein/aisync/internal/platform"
	"github.com/thoreinstein/aisync/internal/platform/platformtest"
)

func mockFactory(name string) platform.Factory {
	return func(root string, _ *slog.Logger) platform.Agent {
		m := platformtest.NewMockAgent(name, model.FieldSupport{Skills: true})
		m.AgentRoot = root
		return m
	}
}

func TestNewRegistry(t *testing.T) {
	r := platform.NewRegistry()
	if got := r.Names(); got != nil {
		t.Errorf("NewRegistry().Names() = %v, want nil", got)
	}
}

func TestRegistry_Register(t *testing.T) {
	r := platform.NewRegistry()

	for _, name := range paths.Platforms() {
		if err := r.Register(name, mockFactory(name)); err != nil {
			t.Fatalf("Register(%q) error = %v", name, err)
		}
	}

	if got := r.Names(); len(got) != 3 || got[0] != paths.PlatformClaude || got[2] != paths.PlatformCopilot {
		t.Errorf("Names() = %v, want platforms in paths.Platforms order", got)
	}

	if err := r.Register(paths.PlatformClaude, mockFactory("claude")); !errors.Is(err, platform.ErrPlatformAlreadyRegistered) {
		t.Errorf("duplicate Register() error = %v, want ErrPlatformAlreadyRegistered", err)
	}
	if err := r.Register("gemini", mockFactory("gemini")); !errors.Is(err, platform.ErrInvalidPlatformName) {
		t.Errorf("Register(gemini) error = %v, want ErrInvalidPlatformName", err)
	}
	if err := r.Register(paths.PlatformCodex, nil); !errors.Is(err, platform.ErrInvalidPlatformName) {
		t.Errorf("Register(nil factory) error = %v, want ErrInvalidPlatformName", err)
	}
}

func TestRegistry_New(t *testing.T) {
	r := platform.NewRegistry()
	if err := r.Register(paths.PlatformCodex, mockFactory(paths.PlatformCodex)); err != nil {
		t.Fatal(err)
	}

	agent, err := r.New(paths.PlatformCodex, "/tmp/codex", nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if agent.Name() != paths.PlatformCodex || agent.Root() != "/tmp/codex" {
		t.Errorf("New() = %s at %s", agent.Name(), agent.Root())
	}

	if _, err := r.New(paths.PlatformClaude, "/tmp", nil); !errors.Is(err, platform.ErrPlatformNotRegistered) {
		t.Errorf("New(unregistered) error = %v, want ErrPlatformNotRegistered", err)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := platform.NewRegistry()
	var wg sync.WaitGroup

	for _, name := range paths.Platforms() {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = r.Register(name, mockFactory(name))
		}()
		go func() {
			defer wg.Done()
			_ = r.Names()
		}()
	}
	wg.Wait()

	if got := len(r.Names()); got != 3 {
		t.Errorf("len(Names()) = %d, want 3", got)
	}
}
