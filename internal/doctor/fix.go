package doctor

import (
	"fmt"
	"os"

	"github.com/thoreinstein/aisync/internal/errors"
)

// Fixer is implemented by checks that can remediate what they find.
// CanFix and Fix must be called after Run.
type Fixer interface {
	CanFix() bool
	Fix() []FixResult
}

// FixResult describes the outcome of an attempted fix.
type FixResult struct {
	Path        string `json:"path"`
	Fixed       bool   `json:"fixed"`
	Description string `json:"description"`
	Error       error  `json:"-"`
}

// Fix runs the fixes of every registered check that found something to fix.
func (r *Runner) Fix() []FixResult {
	var results []FixResult
	for _, c := range r.checks {
		if f, ok := c.(Fixer); ok && f.CanFix() {
			results = append(results, f.Fix()...)
		}
	}
	return results
}

func chmodFix(path string, perm os.FileMode) FixResult {
	result := FixResult{Path: path}
	if err := os.Chmod(path, perm); err != nil {
		result.Description = fmt.Sprintf("failed to chmod %04o: %v", perm, err)
		result.Error = errors.Wrapf(err, "chmod %04o %s", perm, path)
		return result
	}
	result.Fixed = true
	result.Description = fmt.Sprintf("chmod %04o", perm)
	return result
}
