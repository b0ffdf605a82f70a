package doctor

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/aisync/internal/errors"
	"github.com/thoreinstein/aisync/internal/platform"
)

// settingsFiles returns the settings files of every agent that has them.
func settingsFiles(agents []platform.Agent) map[string][]string {
	files := make(map[string][]string, len(agents))
	for _, a := range agents {
		if owner, ok := a.(platform.SettingsOwner); ok {
			files[a.Name()] = owner.SettingsFiles()
		}
	}
	return files
}

// SettingsSyntaxCheck verifies that every existing settings file parses.
// A file that does not parse blocks any sync into that platform.
type SettingsSyntaxCheck struct {
	agents []platform.Agent
}

var _ Check = (*SettingsSyntaxCheck)(nil)

// NewSettingsSyntaxCheck creates a syntax check over agents.
func NewSettingsSyntaxCheck(agents []platform.Agent) *SettingsSyntaxCheck {
	return &SettingsSyntaxCheck{agents: agents}
}

// Name returns the unique identifier for this check.
func (c *SettingsSyntaxCheck) Name() string {
	return "settings-syntax"
}

// Category returns the grouping for this check.
func (c *SettingsSyntaxCheck) Category() string {
	return "settings"
}

// syntaxFileResult is the validation result for a single file.
type syntaxFileResult struct {
	Platform string `json:"platform"`
	Path     string `json:"path"`
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
}

// Run validates each settings file.
func (c *SettingsSyntaxCheck) Run() *CheckResult {
	var results []syntaxFileResult
	var errorCount, passCount int

	files := settingsFiles(c.agents)
	for _, a := range c.agents {
		for _, path := range files[a.Name()] {
			fr := validateFile(path)
			if fr.Status == "missing" {
				continue
			}
			fr.Platform = a.Name()
			results = append(results, fr)
			if fr.Status == "error" {
				errorCount++
			} else {
				passCount++
			}
		}
	}

	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details: map[string]any{
			"files":   results,
			"checked": len(results),
		},
	}
	switch {
	case errorCount > 0:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("%d settings file(s) do not parse", errorCount)
		result.FixHint = "fix the reported syntax, or restore a copy with 'aisync backup restore'"
	case passCount > 0:
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("%d settings file(s) parse", passCount)
	default:
		result.Status = SeverityInfo
		result.Message = "no settings files found"
	}
	return result
}

// validateFile checks that a file is valid JSON or TOML by extension.
func validateFile(path string) syntaxFileResult {
	fr := syntaxFileResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fr.Status = "missing"
			return fr
		}
		fr.Status = "error"
		fr.Message = fmt.Sprintf("read error: %v", err)
		return fr
	}

	// an empty file is an empty document
	if len(strings.TrimSpace(string(data))) == 0 {
		fr.Status = "pass"
		fr.Message = "empty file"
		return fr
	}

	var v any
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &v)
		if err != nil {
			fr.Message = formatTOMLError(err)
		}
	} else {
		err = json.Unmarshal(data, &v)
		if err != nil {
			fr.Message = formatJSONError(err, data)
		} else if _, ok := v.(map[string]any); !ok {
			err = errors.New("top level is not an object")
			fr.Message = "JSON top level is not an object"
		}
	}
	if err != nil {
		fr.Status = "error"
		return fr
	}
	fr.Status = "pass"
	return fr
}

// formatJSONError extracts position information from JSON syntax errors.
func formatJSONError(err error, data []byte) string {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := offsetToLineCol(data, int(syntaxErr.Offset))
		return fmt.Sprintf("JSON syntax error at line %d, column %d: %s", line, col, syntaxErr.Error())
	}
	return fmt.Sprintf("JSON error: %v", err)
}

// formatTOMLError extracts position information from TOML decode errors.
func formatTOMLError(err error) string {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		return fmt.Sprintf("TOML syntax error at line %d, column %d: %s", row, col, decodeErr.Error())
	}
	return fmt.Sprintf("TOML error: %v", err)
}

// offsetToLineCol converts a byte offset to 1-indexed line and column.
func offsetToLineCol(data []byte, offset int) (line, col int) {
	offset = max(0, min(offset, len(data)))

	line = 1
	lineStart := 0
	for i := range offset {
		if data[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, offset - lineStart + 1
}

// secureFilePerm is the target mode for settings files holding credentials.
const secureFilePerm os.FileMode = 0o600

// SecretsPermissionCheck warns when settings files whose MCP servers carry
// credentials in env or headers are readable or writable by other users.
type SecretsPermissionCheck struct {
	agents []platform.Agent
	issues []permissionIssue
}

var (
	_ Check = (*SecretsPermissionCheck)(nil)
	_ Fixer = (*SecretsPermissionCheck)(nil)
)

// NewSecretsPermissionCheck creates a permission check over agents.
func NewSecretsPermissionCheck(agents []platform.Agent) *SecretsPermissionCheck {
	return &SecretsPermissionCheck{agents: agents}
}

// Name returns the unique identifier for this check.
func (c *SecretsPermissionCheck) Name() string {
	return "settings-permissions"
}

// Category returns the grouping for this check.
func (c *SecretsPermissionCheck) Category() string {
	return "filesystem"
}

// permissionIssue is one settings file that is too open.
type permissionIssue struct {
	Path        string   `json:"path"`
	Platform    string   `json:"platform"`
	Permissions string   `json:"permissions"`
	Secrets     []string `json:"secrets"`
}

// Run inspects every agent whose MCP servers carry credentials.
func (c *SecretsPermissionCheck) Run() *CheckResult {
	c.issues = nil
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	if runtime.GOOS == "windows" {
		result.Status = SeverityInfo
		result.Message = "file permissions are not checked on Windows"
		return result
	}

	var unreadable []string
	checked := 0
	files := settingsFiles(c.agents)
	for _, a := range c.agents {
		paths, ok := files[a.Name()]
		if !ok || !a.Supports().MCPServers {
			continue
		}
		servers, err := a.ReadMCPServers()
		if err != nil {
			// the syntax check reports malformed files
			unreadable = append(unreadable, a.Name())
			continue
		}

		var secrets []string
		for _, s := range servers {
			for _, name := range secretNames(s.Env) {
				secrets = append(secrets, s.Name+".env."+name)
			}
			for _, name := range secretNames(s.Headers) {
				secrets = append(secrets, s.Name+".headers."+name)
			}
		}
		if len(secrets) == 0 {
			continue
		}
		slices.Sort(secrets)

		for _, path := range paths {
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			checked++
			if info.Mode().Perm()&0o077 != 0 {
				c.issues = append(c.issues, permissionIssue{
					Path:        path,
					Platform:    a.Name(),
					Permissions: fmt.Sprintf("%04o", info.Mode().Perm()),
					Secrets:     secrets,
				})
			}
		}
	}

	result.Details = map[string]any{"checked": checked}
	if len(unreadable) > 0 {
		result.Details["unreadable"] = unreadable
	}

	if len(c.issues) == 0 {
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("%d settings file(s) with credentials are private", checked)
		if checked == 0 {
			result.Message = "no settings files carry credentials"
		}
		return result
	}

	hints := make([]string, 0, len(c.issues))
	for _, issue := range c.issues {
		hints = append(hints, fmt.Sprintf("chmod %04o %s", secureFilePerm, issue.Path))
	}
	result.Status = SeverityWarning
	result.Message = fmt.Sprintf("%d settings file(s) with credentials are readable by other users", len(c.issues))
	result.Details["issues"] = c.issues
	result.Fixable = true
	result.FixHint = strings.Join(hints, "; ")
	return result
}

// CanFix reports whether the last Run found fixable issues.
func (c *SecretsPermissionCheck) CanFix() bool {
	return len(c.issues) > 0
}

// Fix restricts every flagged file to its owner.
func (c *SecretsPermissionCheck) Fix() []FixResult {
	results := make([]FixResult, 0, len(c.issues))
	for _, issue := range c.issues {
		results = append(results, chmodFix(issue.Path, secureFilePerm))
	}
	return results
}
