package doctor

import (
	"fmt"

	"github.com/thoreinstein/aisync/internal/platform"
)

// PlatformCheck reports which platforms have a configuration root.
type PlatformCheck struct {
	agents []platform.Agent
}

var _ Check = (*PlatformCheck)(nil)

// NewPlatformCheck creates a platform detection check over agents.
func NewPlatformCheck(agents []platform.Agent) *PlatformCheck {
	return &PlatformCheck{agents: agents}
}

// Name returns the unique identifier for this check.
func (c *PlatformCheck) Name() string {
	return "platform-detection"
}

// Category returns the grouping for this check.
func (c *PlatformCheck) Category() string {
	return "platform"
}

// Run executes the platform detection check.
func (c *PlatformCheck) Run() *CheckResult {
	results := platform.DetectAll(c.agents)

	platforms := make(map[string]any, len(results))
	var installed int
	for _, r := range results {
		platforms[r.Name] = map[string]any{
			"status": string(r.Status),
			"root":   r.Root,
		}
		if r.Installed() {
			installed++
		}
	}

	details := map[string]any{
		"platforms": platforms,
		"installed": installed,
		"total":     len(results),
	}

	switch {
	case installed == 0:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  "no platform configuration roots found; aisync has nothing to sync",
			Details:  details,
			FixHint:  "install Claude Code, Codex CLI or GitHub Copilot CLI, or set platforms.<name>.config_dir",
		}
	case installed == 1:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "1 platform installed; a sync needs a second root to write to",
			Details:  details,
		}
	default:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityPass,
			Message:  fmt.Sprintf("%d of %d platforms installed", installed, len(results)),
			Details:  details,
		}
	}
}
