package commands

import (
	"log/slog"
	"testing"

	"github.com/thoreinstein/aisync/internal/errors"
	"github.com/thoreinstein/aisync/internal/logging"
)

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default (0)", 0, slog.LevelWarn},
		{"verbose (1)", 1, slog.LevelInfo},
		{"debug (2)", 2, slog.LevelDebug},
		{"trace (3)", 3, logging.LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(debugEnv, "")
			verbosity = tt.verbosity
			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(t.Context(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
			if tt.wantLevel > logging.LevelTrace {
				shouldBeDisabled := tt.wantLevel - 4
				if logger.Enabled(t.Context(), shouldBeDisabled) {
					t.Errorf("expected level %v to be disabled", shouldBeDisabled)
				}
			}
		})
	}
}

func TestSetupLogging_EnvVar(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		envVal    string
		wantLevel slog.Level
	}{
		{"AISYNC_DEBUG=1", "1", slog.LevelDebug},
		{"AISYNC_DEBUG=true", "true", slog.LevelDebug},
		{"AISYNC_DEBUG=2", "2", logging.LevelTrace},
		{"AISYNC_DEBUG=0", "0", slog.LevelWarn},
		{"AISYNC_DEBUG=unknown", "foo", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = 0
			t.Setenv(debugEnv, tt.envVal)

			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(t.Context(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
			if tt.wantLevel == slog.LevelDebug && logger.Enabled(t.Context(), logging.LevelTrace) {
				t.Error("expected trace level to be disabled")
			}
		})
	}
}

func TestSetupLogging_QuietAndVerbose(t *testing.T) {
	origVerbosity, origQuiet := verbosity, quiet
	defer func() { verbosity, quiet = origVerbosity, origQuiet }()

	verbosity, quiet = 1, true
	err := setupLogging(rootCmd)
	if errors.ExitCode(err) != errors.ExitUser {
		t.Errorf("ExitCode = %d, want %d (err = %v)", errors.ExitCode(err), errors.ExitUser, err)
	}
}

func TestRoot_InvalidConfig(t *testing.T) {
	cfg := t.TempDir() + "/config.yaml"
	writeFile(t, cfg, "version: 1\nplatforms:\n  opencode:\n    config_dir: /tmp/x\n")

	_, _, err := execute(t, "--config", cfg, "status")
	if err == nil {
		t.Fatal("expected an error for an unknown platform in config")
	}
	if errors.ExitCode(err) != errors.ExitUser {
		t.Errorf("ExitCode = %d, want %d", errors.ExitCode(err), errors.ExitUser)
	}
}
