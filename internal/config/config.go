// Package config provides configuration management for aisync using Viper.
package config

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/aisync/internal/errors"
	"github.com/thoreinstein/aisync/internal/paths"
)

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "AISYNC"

// Config represents the top-level configuration structure.
type Config struct {
	Version   int                         `mapstructure:"version" yaml:"version"`
	Platforms map[string]PlatformOverride `mapstructure:"platforms" yaml:"platforms"`
	Sync      SyncDefaults                `mapstructure:"sync" yaml:"sync"`
	Backup    BackupSettings              `mapstructure:"backup" yaml:"backup"`
}

// PlatformOverride contains configuration overrides for a specific platform.
type PlatformOverride struct {
	ConfigDir string `mapstructure:"config_dir" yaml:"config_dir"`
}

// SyncDefaults are the defaults of the sync flags that are not per-run.
type SyncDefaults struct {
	IncludeMarketplace   bool `mapstructure:"include_marketplace" yaml:"include_marketplace"`
	SkipExistingCommands bool `mapstructure:"skip_existing_commands" yaml:"skip_existing_commands"`
}

// BackupSettings controls the settings snapshots taken before a sync writes.
type BackupSettings struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Retention is the number of backups kept per platform. Zero means the
	// default.
	Retention int `mapstructure:"retention" yaml:"retention"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before Load.
func Init(env paths.Env) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath(env.ConfigDir())

	// AISYNC_SYNC_INCLUDE_MARKETPLACE=true overrides sync.include_marketplace
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("sync.include_marketplace", false)
	viper.SetDefault("sync.skip_existing_commands", false)
	viper.SetDefault("backup.enabled", true)
	viper.SetDefault("backup.retention", 5)
	for _, p := range paths.Platforms() {
		viper.SetDefault("platforms."+p+".config_dir", "")
	}
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file and a missing file
// is an error. If path is empty, the default locations are searched and
// defaults are used when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// defaults only
		case errors.As(err, &notFound), errors.Is(err, fs.ErrNotExist):
			return nil, errors.Mark(errors.Wrapf(err, "config file not found at %s", path), errors.ErrNotFound)
		default:
			return nil, errors.Mark(errors.Wrap(err, "reading config file"), errors.ErrInvalidConfig)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "unmarshaling config"), errors.ErrInvalidConfig)
	}

	return &cfg, nil
}

// BackupDir returns where backups are stored.
func BackupDir(env paths.Env) string {
	return filepath.Join(env.ConfigDir(), "backups")
}

// RootOverride returns the configured root for platform with a leading "~"
// expanded against home, or "" when none is configured.
func (c *Config) RootOverride(platform, home string) string {
	if c == nil {
		return ""
	}
	return ExpandHome(c.Platforms[platform].ConfigDir, home)
}

// ExpandHome replaces a leading "~" in path with home.
func ExpandHome(path, home string) string {
	switch {
	case path == "~":
		return home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:])
	default:
		return path
	}
}
