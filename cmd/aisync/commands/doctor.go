package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/aisync/internal/doctor"
	"github.com/thoreinstein/aisync/internal/errors"
	"github.com/thoreinstein/aisync/internal/logging"
)

var (
	doctorJSON bool
	doctorAll  bool
	doctorFix  bool
)

var (
	errDoctorWarnings = errors.New("doctor found warnings")
	errDoctorErrors   = errors.New("doctor found errors")
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorAll, "all", false, "show passed and informational checks too")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "restrict permissions of settings files holding credentials")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose platform settings before a sync",
	Long: `Run diagnostic checks over every platform's configuration root.

Checks that each settings file parses (a malformed file blocks any sync
into that platform) and that settings files whose MCP servers carry
credentials are not readable by other users. Agent and skill headers are
parsed too; a sync to Copilot replaces agent headers that do not parse.

Exit codes:
  0 - all checks passed
  1 - warnings present, no errors
  2 - errors present`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		agents := newResolver(c).Agents()
		runner := doctor.NewRunner(
			doctor.NewPlatformCheck(agents),
			doctor.NewSettingsSyntaxCheck(agents),
			doctor.NewSecretsPermissionCheck(agents),
			doctor.NewHeaderSyntaxCheck(agents),
		)
		report := runner.Run()

		var fixes []doctor.FixResult
		if doctorFix {
			fixes = runner.Fix()
			if len(fixes) > 0 {
				// re-run so the report reflects the fixed state
				report = runner.Run()
			}
		}

		out := c.OutOrStdout()
		switch {
		case doctorJSON:
			if err := writeDoctorJSON(out, report, fixes); err != nil {
				return err
			}
		case !quiet:
			color.NoColor = !logging.SupportsColor(out)
			writeDoctorText(out, report, fixes)
		}

		for _, f := range fixes {
			if f.Error != nil {
				return errors.NewSystemError(f.Error, "fix the permissions by hand")
			}
		}
		if report.HasErrors() {
			return errors.NewExitError(errDoctorErrors, errors.ExitSystem)
		}
		if report.HasWarnings() {
			return errors.NewExitError(errDoctorWarnings, errors.ExitUser)
		}
		return nil
	},
}

func writeDoctorJSON(w io.Writer, report *doctor.Report, fixes []doctor.FixResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		*doctor.Report
		Fixes []doctor.FixResult `json:"fixes,omitempty"`
	}{report, fixes})
}

func writeDoctorText(w io.Writer, report *doctor.Report, fixes []doctor.FixResult) {
	gray := color.New(color.FgHiBlack)

	for _, f := range fixes {
		if f.Fixed {
			fmt.Fprintf(w, "%s fixed %s: %s\n", color.GreenString("✓"), f.Path, f.Description)
		} else {
			fmt.Fprintf(w, "%s could not fix %s: %s\n", color.RedString("✗"), f.Path, f.Description)
		}
	}

	for _, r := range report.Results {
		problem := r.Status == doctor.SeverityError || r.Status == doctor.SeverityWarning
		if !problem && !doctorAll {
			continue
		}
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(r.Status), r.Category, r.Name, r.Message)
		if problem && r.FixHint != "" {
			gray.Fprintf(w, "  hint: %s\n", r.FixHint)
		}
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return color.GreenString("✓")
	case doctor.SeverityInfo:
		return color.CyanString("ℹ")
	case doctor.SeverityWarning:
		return color.YellowString("⚠")
	case doctor.SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}
