package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/aisync/internal/assetfs"
	"github.com/thoreinstein/aisync/internal/cli"
	"github.com/thoreinstein/aisync/internal/errors"
	"github.com/thoreinstein/aisync/internal/logging"
	"github.com/thoreinstein/aisync/internal/model"
	"github.com/thoreinstein/aisync/internal/paths"
	"github.com/thoreinstein/aisync/internal/platform"
	"github.com/thoreinstein/aisync/internal/sync"
)

// syncFlags holds the flags shared by every sync subcommand.
type syncFlags struct {
	from, to         string
	fromRoot, toRoot string
	dryRun           bool
	skipExisting     bool
	marketplace      bool
	noBackup         bool
	json             bool
}

var syncOpts syncFlags

// picker chooses a platform when --from or --to is omitted. Tests replace it.
var picker = cli.DefaultPicker

func init() {
	f := syncCmd.PersistentFlags()
	f.StringVar(&syncOpts.from, "from", "", "source platform: claude, codex, copilot (prompted when omitted)")
	f.StringVar(&syncOpts.to, "to", "", "target platform: claude, codex, copilot (prompted when omitted)")
	f.StringVar(&syncOpts.fromRoot, "from-root", "", "source configuration root (overrides config and default)")
	f.StringVar(&syncOpts.toRoot, "to-root", "", "target configuration root (overrides config and default)")
	f.BoolVar(&syncOpts.dryRun, "dry-run", false, "report what would change without writing")
	f.BoolVar(&syncOpts.skipExisting, "skip-existing-commands", false, "never overwrite commands the target already has")
	f.BoolVar(&syncOpts.marketplace, "include-marketplace", false, "also read Claude plugin marketplace commands")
	f.BoolVar(&syncOpts.noBackup, "no-backup", false, "do not snapshot the target's settings files first")
	f.BoolVar(&syncOpts.json, "json", false, "output the report as JSON")

	syncCmd.AddCommand(newSyncSubcommand("all", "Sync every domain", nil))
	syncCmd.AddCommand(newSyncSubcommand("commands", "Sync slash commands / custom prompts", ptr(model.DomainCommands)))
	syncCmd.AddCommand(newSyncSubcommand("mcp", "Sync MCP server definitions", ptr(model.DomainMCPServers)))
	syncCmd.AddCommand(newSyncSubcommand("preferences", "Sync the selected model", ptr(model.DomainPreferences)))
	syncCmd.AddCommand(newSyncSubcommand("skills", "Sync skills", ptr(model.DomainSkills)))
	syncCmd.AddCommand(newSyncSubcommand("hooks", "Sync hook scripts", ptr(model.DomainHooks)))
	syncCmd.AddCommand(newSyncSubcommand("agents", "Sync sub-agents", ptr(model.DomainAgents)))
	rootCmd.AddCommand(syncCmd)
}

func ptr[T any](v T) *T { return &v }

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Copy assets from one platform to another",
	Long: `Copy assets from a source platform to a target platform.

Each subcommand selects what to sync. Domains the source or target does
not support are reported as unsupported and skipped. Items whose
target content already matches are reported unchanged and not rewritten.

When --from or --to is omitted in a terminal, you are prompted to pick.`,
	Example: `  aisync sync all --from claude --to copilot
  aisync sync skills --from claude --to codex --dry-run
  aisync sync commands --from claude --to codex --skip-existing-commands --json`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// newSyncSubcommand builds the subcommand for one domain, or for every
// domain when only is nil.
func newSyncSubcommand(use, short string, only *model.Domain) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSync(cmd, only)
		},
	}
}

func runSync(cmd *cobra.Command, only *model.Domain) error {
	logger := logging.FromContext(cmd.Context())
	resolver := newResolver(cmd)

	from, to, err := choosePlatforms(resolver)
	if err != nil {
		return err
	}

	source, target, err := resolver.ResolvePair(from, syncOpts.fromRoot, to, syncOpts.toRoot)
	if err != nil {
		return resolveError(err)
	}

	params := syncParams(cmd, source.Name(), target.Name(), only)

	var backupID string
	if !params.DryRun && backupEnabled() {
		if backupID, err = backupTarget(cmd, target); err != nil {
			return err
		}
	}

	report, err := sync.NewEngine(sync.WithLogger(logger)).Run(source, target, params)
	if err != nil {
		if errors.Is(err, assetfs.ErrMalformedSettings) {
			return errors.NewSystemError(err, "fix or remove the malformed settings file, then re-run")
		}
		return errors.NewSystemError(err, "re-run after fixing the problem; items already synced are reported unchanged")
	}

	out := cmd.OutOrStdout()
	if syncOpts.json {
		return sync.WriteJSON(out, report)
	}
	if quiet {
		return nil
	}
	color.NoColor = !logging.SupportsColor(out)
	if err := sync.WriteText(out, report); err != nil {
		return err
	}
	if backupID != "" {
		color.New(color.FgHiBlack).Fprintf(out, "previous settings saved as backup %s\n", backupID)
	}
	return nil
}

func backupEnabled() bool {
	if syncOpts.noBackup {
		return false
	}
	return appConfig == nil || appConfig.Backup.Enabled
}

// choosePlatforms returns the source and target names, prompting for any
// that were not given.
func choosePlatforms(resolver *cli.Resolver) (from, to string, err error) {
	from, to = syncOpts.from, syncOpts.to
	if from != "" && to != "" {
		return from, to, nil
	}

	p := picker()
	agents := resolver.Agents()
	if from == "" {
		if from, err = cli.PickPlatform(p, "Source platform", agents, ""); err != nil {
			return "", "", pickError(err)
		}
	}
	if to == "" {
		// syncing onto a second root of the same platform needs --to
		if to, err = cli.PickPlatform(p, "Target platform", agents, from); err != nil {
			return "", "", pickError(err)
		}
	}
	return from, to, nil
}

// syncParams merges flags with config defaults. A flag given on the
// command line wins over the config file.
func syncParams(cmd *cobra.Command, source, target string, only *model.Domain) model.SyncParams {
	params := model.SyncParams{
		Source:               source,
		Target:               target,
		DryRun:               syncOpts.dryRun,
		SkipExistingCommands: syncOpts.skipExisting,
		IncludeMarketplace:   syncOpts.marketplace,
	}
	if appConfig != nil {
		if !cmd.Flags().Changed("skip-existing-commands") {
			params.SkipExistingCommands = appConfig.Sync.SkipExistingCommands
		}
		if !cmd.Flags().Changed("include-marketplace") {
			params.IncludeMarketplace = appConfig.Sync.IncludeMarketplace
		}
	}

	if only == nil {
		return params.WithAllDomains()
	}
	return params.WithOnly(*only)
}

func resolveError(err error) error {
	switch {
	case errors.Is(err, paths.ErrHomeDirNotFound):
		return errors.NewSystemError(err, "set HOME or pass --from-root and --to-root")
	case errors.Is(err, paths.ErrUnknownPlatform), errors.Is(err, platform.ErrPlatformNotRegistered):
		return errors.NewUserError(err, "valid platforms are claude, codex and copilot")
	case errors.Is(err, cli.ErrSamePlatform):
		return errors.NewUserError(err, "pass --to-root to sync into a different root of the same platform")
	default:
		return errors.NewSystemError(err, "")
	}
}

func pickError(err error) error {
	if errors.Is(err, cli.ErrPlatformRequired) {
		return errors.NewUserError(err, "pass --from and --to")
	}
	return errors.NewUserError(err, "")
}
