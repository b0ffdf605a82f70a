package platform

import (
	"os"

	"github.com/thoreinstein/aisync/internal/model"
)

// InstallStatus indicates the installation state of a platform.
type InstallStatus string

const (
	// StatusInstalled indicates the platform's root directory exists.
	StatusInstalled InstallStatus = "installed"

	// StatusNotInstalled indicates the platform's root directory does not exist.
	StatusNotInstalled InstallStatus = "not_installed"
)

// DetectionResult describes one adapter's installation.
type DetectionResult struct {
	Name        string
	DisplayName string
	Root        string
	Status      InstallStatus
	Supports    model.FieldSupport
}

// Installed reports whether the root directory exists.
func (r DetectionResult) Installed() bool {
	return r.Status == StatusInstalled
}

// Detect inspects the adapter's root.
func Detect(agent Agent) DetectionResult {
	status := StatusNotInstalled
	if dirExists(agent.Root()) {
		status = StatusInstalled
	}
	return DetectionResult{
		Name:        agent.Name(),
		DisplayName: agent.DisplayName(),
		Root:        agent.Root(),
		Status:      status,
		Supports:    agent.Supports(),
	}
}

// DetectAll runs Detect on every adapter, keeping their order.
func DetectAll(agents []Agent) []DetectionResult {
	results := make([]DetectionResult, 0, len(agents))
	for _, a := range agents {
		results = append(results, Detect(a))
	}
	return results
}

func dirExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
