package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/aisync/internal/errors"
)

// AppName names aisync's own config directory.
const AppName = "aisync"

// Platform identifiers for supported AI coding agents.
const (
	PlatformClaude  = "claude"
	PlatformCodex   = "codex"
	PlatformCopilot = "copilot"
)

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrUnknownPlatform indicates an unrecognized platform name.
	ErrUnknownPlatform = errors.New("unknown platform")
)

// Env is the environment default roots are resolved against. It is built
// once by CurrentEnv and passed explicitly so tests can point every platform
// at a temporary directory.
type Env struct {
	// Home is the user's home directory.
	Home string

	// ConfigHome is the XDG config home. Empty means <Home>/.config.
	ConfigHome string

	// CodexHome is the value of CODEX_HOME, if set.
	CodexHome string
}

// CurrentEnv captures the process environment.
func CurrentEnv() (Env, error) {
	xdg.Reload()
	home, err := os.UserHomeDir()
	if err != nil {
		return Env{}, errors.Mark(errors.Wrap(err, "resolving home directory"), ErrHomeDirNotFound)
	}
	if home == "" {
		return Env{}, ErrHomeDirNotFound
	}
	return Env{
		Home:       home,
		ConfigHome: xdg.ConfigHome,
		CodexHome:  os.Getenv("CODEX_HOME"),
	}, nil
}

func (e Env) configHome() string {
	if e.ConfigHome != "" {
		return e.ConfigHome
	}
	return filepath.Join(e.Home, ".config")
}

// ConfigDir returns aisync's configuration directory.
func (e Env) ConfigDir() string {
	return filepath.Join(e.configHome(), AppName)
}

// DefaultRoot returns the default configuration root of platform.
//
//   - claude: ~/.claude
//   - codex: $CODEX_HOME, else ~/.codex
//   - copilot: <ConfigHome>/copilot, else ~/.copilot when only the legacy
//     directory exists
func (e Env) DefaultRoot(platform string) (string, error) {
	if e.Home == "" {
		return "", errors.Wrapf(ErrHomeDirNotFound, "resolving %s root", platform)
	}

	switch platform {
	case PlatformClaude:
		return filepath.Join(e.Home, ".claude"), nil
	case PlatformCodex:
		if e.CodexHome != "" {
			return e.CodexHome, nil
		}
		return filepath.Join(e.Home, ".codex"), nil
	case PlatformCopilot:
		standard := filepath.Join(e.configHome(), "copilot")
		legacy := filepath.Join(e.Home, ".copilot")
		if !isDir(standard) && isDir(legacy) {
			return legacy, nil
		}
		return standard, nil
	default:
		return "", errors.Wrapf(ErrUnknownPlatform, "%q", platform)
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ValidPlatform returns true if the platform name is recognized.
func ValidPlatform(platform string) bool {
	switch platform {
	case PlatformClaude, PlatformCodex, PlatformCopilot:
		return true
	default:
		return false
	}
}

// Platforms returns every supported platform identifier.
func Platforms() []string {
	return []string{PlatformClaude, PlatformCodex, PlatformCopilot}
}
