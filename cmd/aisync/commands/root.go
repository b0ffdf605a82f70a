// Package commands implements the CLI commands for aisync.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/aisync/cmd"
	"github.com/thoreinstein/aisync/internal/cli"
	"github.com/thoreinstein/aisync/internal/config"
	"github.com/thoreinstein/aisync/internal/errors"
	"github.com/thoreinstein/aisync/internal/logging"
	"github.com/thoreinstein/aisync/internal/paths"
)

// debugEnv raises verbosity when no -v flag is given: 1 or true for debug,
// 2 for trace.
const debugEnv = "AISYNC_DEBUG"

var (
	// verbosity holds the count of -v flags.
	verbosity int

	// quiet holds the value of the -q/--quiet flag.
	quiet bool

	// logFormat holds the value of the --log-format flag.
	logFormat string

	// logFile holds the path to the log file.
	logFile string

	// configFile holds the value of the --config flag.
	configFile string
)

// Loaded in PersistentPreRunE.
var (
	appEnv    paths.Env
	appConfig *config.Config
)

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"also write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./config.yaml or $XDG_CONFIG_HOME/aisync/config.yaml)")

	rootCmd.Version = cmd.Info()
	rootCmd.SetVersionTemplate("aisync version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "aisync",
	Short: "Sync commands, MCP servers and skills between AI coding agents",
	Long: `aisync copies reusable assets between Claude Code, Codex CLI and
GitHub Copilot CLI installations.

Slash commands, MCP server definitions, the selected model, skills,
hooks and sub-agents are read from the source platform and written to
the target in its native format. Files that already match are left
alone, and settings keys aisync does not manage are preserved.`,
	Example: `  # Preview what a full sync would change
  aisync sync all --from claude --to copilot --dry-run

  # Copy only MCP servers
  aisync sync mcp --from claude --to codex

  # Show detected platforms and what each supports
  aisync status`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return loadConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("conflicting flags"), "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		// CLI flags take precedence over the environment
		if v == 0 {
			switch os.Getenv(debugEnv) {
			case "1", "true":
				v = 2
			case "2":
				v = 3
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	handlers := []slog.Handler{logging.Config{
		Level:  level,
		Format: logging.ParseFormat(logFormat),
		Output: cmd.ErrOrStderr(),
	}.NewHandler()}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrapf(err, "opening log file %s", logFile), "check the --log-file path")
		}
		handlers = append(handlers, logging.Config{
			Level:  level,
			Format: logging.FormatJSON,
			Output: f,
		}.NewHandler())
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))
	return nil
}

// loadConfig captures the environment and reads the config file. A missing
// home directory is tolerated here; it only fails once a default root is
// needed.
func loadConfig(cmd *cobra.Command) error {
	logger := logging.FromContext(cmd.Context())

	env, err := paths.CurrentEnv()
	if err != nil {
		logger.Debug("home directory unavailable", "error", err)
	}
	appEnv = env

	config.Init(appEnv)
	cfg, err := config.Load(configFile)
	if err != nil {
		return errors.NewConfigError(err)
	}
	if errs := config.Validate(cfg); len(errs) > 0 {
		for _, e := range errs[1:] {
			logger.Error("invalid config", "error", e)
		}
		return errors.NewConfigError(errs[0])
	}
	appConfig = cfg
	return nil
}

// newResolver builds a resolver from the loaded environment and config.
func newResolver(cmd *cobra.Command) *cli.Resolver {
	return &cli.Resolver{
		Env:      appEnv,
		Config:   appConfig,
		Registry: cli.DefaultRegistry(),
		Logger:   logging.FromContext(cmd.Context()),
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
