package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/aisync/internal/logging"
	"github.com/thoreinstein/aisync/internal/model"
	"github.com/thoreinstein/aisync/internal/platform"
)

var statusJSON bool

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show platforms, their roots and what each supports",
	Long: `Show every supported platform with its resolved configuration root,
whether that root exists, and which domains the platform can sync.

Roots follow the same precedence as sync: the config file's
platforms.<name>.config_dir, then the platform default.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		results := platform.DetectAll(newResolver(cmd).Agents())
		out := cmd.OutOrStdout()
		if statusJSON {
			return writeStatusJSON(out, results)
		}
		color.NoColor = !logging.SupportsColor(out)
		return writeStatusText(out, results)
	},
}

// statusJSONEntry is one platform in status --json output.
type statusJSONEntry struct {
	Platform  string          `json:"platform"`
	Name      string          `json:"name"`
	Root      string          `json:"root"`
	Installed bool            `json:"installed"`
	Supports  map[string]bool `json:"supports"`
}

func writeStatusJSON(w io.Writer, results []platform.DetectionResult) error {
	entries := make([]statusJSONEntry, 0, len(results))
	for _, r := range results {
		supports := make(map[string]bool, len(model.Domains()))
		for _, d := range model.Domains() {
			supports[string(d)] = r.Supports.Has(d)
		}
		entries = append(entries, statusJSONEntry{
			Platform:  r.Name,
			Name:      r.DisplayName,
			Root:      r.Root,
			Installed: r.Installed(),
			Supports:  supports,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func writeStatusText(w io.Writer, results []platform.DetectionResult) error {
	header := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)
	gray := color.New(color.FgHiBlack)

	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		header.Fprintf(w, "%s (%s)\n", r.DisplayName, r.Name)

		status := gray.Sprint("not installed")
		if r.Installed() {
			status = green.Sprint("installed")
		}
		fmt.Fprintf(w, "  root:   %s\n", r.Root)
		fmt.Fprintf(w, "  status: %s\n", status)
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, "DOMAIN")
	for _, r := range results {
		fmt.Fprintf(tw, "\t%s", r.Name)
	}
	fmt.Fprintln(tw)
	for _, d := range model.Domains() {
		fmt.Fprint(tw, d)
		for _, r := range results {
			mark := "-"
			if r.Supports.Has(d) {
				mark = "yes"
			}
			fmt.Fprintf(tw, "\t%s", mark)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
