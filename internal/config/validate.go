package config

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/thoreinstein/aisync/internal/errors"
	"github.com/thoreinstein/aisync/internal/paths"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidPlatform indicates an unrecognized platform name.
	ErrInvalidPlatform = errors.New("invalid platform")

	// ErrInvalidPath indicates a path value is malformed or relative.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidRetention indicates a negative backup retention count.
	ErrInvalidRetention = errors.New("backup.retention must be >= 0")
)

// Validate checks a Config and returns every problem found.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error
	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}
	if cfg.Backup.Retention < 0 {
		errs = append(errs, ErrInvalidRetention)
	}

	names := make([]string, 0, len(cfg.Platforms))
	for name := range cfg.Platforms {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !paths.ValidPlatform(name) {
			errs = append(errs, &PlatformError{Platform: name, Err: ErrInvalidPlatform})
			continue
		}
		dir := cfg.Platforms[name].ConfigDir
		if dir == "" {
			// unset means the default root
			continue
		}
		if err := validatePath(dir); err != nil {
			errs = append(errs, &PathError{
				Field: "platforms." + name + ".config_dir",
				Path:  dir,
				Err:   err,
			})
		}
	}

	return errs
}

// validatePath accepts absolute paths and paths starting with "~/".
func validatePath(path string) error {
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		return nil
	}
	if !filepath.IsAbs(path) {
		return ErrInvalidPath
	}
	return nil
}

// PlatformError represents an error for a specific platform.
type PlatformError struct {
	Platform string
	Err      error
}

func (e *PlatformError) Error() string {
	return e.Err.Error() + ": " + e.Platform
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
