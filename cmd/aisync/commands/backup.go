package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/aisync/cmd"
	"github.com/thoreinstein/aisync/internal/backup"
	"github.com/thoreinstein/aisync/internal/config"
	"github.com/thoreinstein/aisync/internal/errors"
	"github.com/thoreinstein/aisync/internal/logging"
	"github.com/thoreinstein/aisync/internal/paths"
	"github.com/thoreinstein/aisync/internal/platform"
)

var (
	backupJSON bool
	pruneKeep  int
)

func init() {
	backupListCmd.Flags().BoolVar(&backupJSON, "json", false, "output as JSON")
	backupPruneCmd.Flags().IntVar(&pruneKeep, "keep", backup.DefaultRetentionCount, "number of backups to retain per platform")

	backupCmd.AddCommand(backupListCmd, backupRestoreCmd, backupPruneCmd)
	rootCmd.AddCommand(backupCmd)
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage settings backups",
	Long: `Manage the settings backups taken before a sync.

Before a sync rewrites a target's settings files (settings.json,
config.toml, mcp-config.json, config.json), aisync copies them into
$XDG_CONFIG_HOME/aisync/backups/<platform>/. Set backup.enabled: false in
the config file or pass --no-backup to sync to turn this off.`,
	Example: `  aisync backup list
  aisync backup restore codex
  aisync backup restore codex 20260123T100712
  aisync backup prune --keep 3`,
	Run: func(c *cobra.Command, _ []string) {
		_ = c.Help()
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list [platform]",
	Short: "List backups, newest first",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		platforms, err := backupPlatforms(args)
		if err != nil {
			return err
		}
		mgr, err := newBackupManager(c)
		if err != nil {
			return err
		}

		listing := make([]backupListing, 0, len(platforms))
		for _, name := range platforms {
			manifests, err := mgr.List(name)
			if err != nil && !errors.Is(err, backup.ErrNoBackupsFound) {
				return errors.NewSystemError(errors.Wrapf(err, "listing backups for %s", name), "")
			}
			listing = append(listing, newBackupListing(name, manifests))
		}

		out := c.OutOrStdout()
		if backupJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(listing)
		}
		color.NoColor = !logging.SupportsColor(out)
		return writeBackupText(out, listing)
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <platform> [backup-id]",
	Short: "Restore a platform's settings from a backup",
	Long: `Restore a platform's settings files from a backup.

Without a backup ID the most recent backup is used. Every file is checked
against its recorded hash before any file is written back.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(c *cobra.Command, args []string) error {
		name := args[0]
		if !paths.ValidPlatform(name) {
			return errors.NewUserError(errors.Wrapf(paths.ErrUnknownPlatform, "%q", name), "valid platforms are claude, codex and copilot")
		}
		mgr, err := newBackupManager(c)
		if err != nil {
			return err
		}

		var id string
		if len(args) == 2 {
			id = args[1]
		} else {
			latest, err := mgr.Latest(name)
			if err != nil {
				return backupError(err)
			}
			id = latest.ID
		}

		manifest, err := mgr.Restore(name, id)
		if err != nil {
			return backupError(err)
		}
		if !quiet {
			fmt.Fprintf(c.OutOrStdout(), "Restored %d file(s) for %s from backup %s\n", len(manifest.Files), name, id)
		}
		return nil
	},
}

var backupPruneCmd = &cobra.Command{
	Use:   "prune [platform]",
	Short: "Remove old backups",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		if pruneKeep < 0 {
			return errors.NewUserError(errors.New("--keep must be non-negative"), "")
		}
		platforms, err := backupPlatforms(args)
		if err != nil {
			return err
		}
		mgr, err := newBackupManager(c)
		if err != nil {
			return err
		}

		removed := 0
		for _, name := range platforms {
			manifests, err := mgr.List(name)
			if errors.Is(err, backup.ErrNoBackupsFound) {
				continue
			}
			if err != nil {
				return errors.NewSystemError(err, "")
			}
			if err := mgr.Prune(name, pruneKeep); err != nil {
				return errors.NewSystemError(errors.Wrapf(err, "pruning backups for %s", name), "")
			}
			removed += max(len(manifests)-pruneKeep, 0)
		}
		if !quiet {
			fmt.Fprintf(c.OutOrStdout(), "Removed %d backup(s)\n", removed)
		}
		return nil
	},
}

// backupListing is one platform in backup list output.
type backupListing struct {
	Platform string        `json:"platform"`
	Backups  []backupEntry `json:"backups"`
}

type backupEntry struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Files         int       `json:"files"`
	AISyncVersion string    `json:"aisync_version"`
}

func newBackupListing(name string, manifests []backup.Manifest) backupListing {
	l := backupListing{Platform: name, Backups: make([]backupEntry, 0, len(manifests))}
	for _, m := range manifests {
		l.Backups = append(l.Backups, backupEntry{
			ID:            m.ID,
			CreatedAt:     m.CreatedAt,
			Files:         len(m.Files),
			AISyncVersion: m.AISyncVersion,
		})
	}
	return l
}

func writeBackupText(w io.Writer, listing []backupListing) error {
	header := color.New(color.FgCyan, color.Bold)
	gray := color.New(color.FgHiBlack)

	for i, l := range listing {
		if i > 0 {
			fmt.Fprintln(w)
		}
		header.Fprintln(w, l.Platform)
		if len(l.Backups) == 0 {
			gray.Fprintln(w, "  (no backups)")
			continue
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  ID\tCREATED\tFILES\tVERSION")
		for _, b := range l.Backups {
			fmt.Fprintf(tw, "  %s\t%s\t%d\t%s\n", b.ID, b.CreatedAt.Local().Format("2006-01-02 15:04:05"), b.Files, b.AISyncVersion)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func backupPlatforms(args []string) ([]string, error) {
	if len(args) == 0 {
		return paths.Platforms(), nil
	}
	if !paths.ValidPlatform(args[0]) {
		return nil, errors.NewUserError(errors.Wrapf(paths.ErrUnknownPlatform, "%q", args[0]), "valid platforms are claude, codex and copilot")
	}
	return args[:1], nil
}

// newBackupManager builds a manager rooted in aisync's config directory.
func newBackupManager(c *cobra.Command) (*backup.Manager, error) {
	if appEnv.Home == "" && appEnv.ConfigHome == "" {
		return nil, errors.NewSystemError(paths.ErrHomeDirNotFound, "set HOME or XDG_CONFIG_HOME")
	}
	opts := []backup.Option{
		backup.WithVersion(cmd.Version),
		backup.WithLogger(logging.FromContext(c.Context())),
	}
	if appConfig != nil {
		opts = append(opts, backup.WithRetentionCount(appConfig.Backup.Retention))
	}
	return backup.NewManager(config.BackupDir(appEnv), opts...), nil
}

// backupTarget snapshots the target's settings files. It returns the
// backup ID, or "" when the target has no settings yet.
func backupTarget(c *cobra.Command, target platform.Agent) (string, error) {
	owner, ok := target.(platform.SettingsOwner)
	if !ok {
		return "", nil
	}
	mgr, err := newBackupManager(c)
	if err != nil {
		return "", err
	}

	manifest, err := mgr.Backup(target.Name(), owner.SettingsFiles())
	if errors.Is(err, backup.ErrNothingToBackUp) {
		return "", nil
	}
	if err != nil {
		return "", errors.NewSystemError(errors.Wrap(err, "backing up target settings"), "pass --no-backup to sync without a backup")
	}
	logging.FromContext(c.Context()).Info("target settings backed up", "platform", target.Name(), "id", manifest.ID)
	return manifest.ID, nil
}

func backupError(err error) error {
	switch {
	case errors.Is(err, backup.ErrNoBackupsFound):
		return errors.NewUserError(err, "run 'aisync backup list' to see available backups")
	case errors.Is(err, backup.ErrBackupCorrupted):
		return errors.NewSystemError(err, "pick an older backup with 'aisync backup list'")
	default:
		return errors.NewSystemError(err, "")
	}
}
