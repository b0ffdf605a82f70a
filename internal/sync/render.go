package sync

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/thoreinstein/aisync/internal/model"
)

// ReportJSON is the machine-readable form of a SyncReport.
type ReportJSON struct {
	Source      string         `json:"source"`
	Target      string         `json:"target"`
	DryRun      bool           `json:"dry_run"`
	Domains     []DomainJSON   `json:"domains"`
	Unsupported []model.Domain `json:"unsupported,omitempty"`
	Summary     string         `json:"summary"`
}

// DomainJSON is one enabled domain of a ReportJSON.
type DomainJSON struct {
	Domain    model.Domain `json:"domain"`
	Written   int          `json:"written"`
	Unchanged []string     `json:"unchanged"`
}

// ToJSON converts r to its JSON form. Domains appear in sync order.
func ToJSON(r *model.SyncReport) ReportJSON {
	out := ReportJSON{
		Source:      r.Source,
		Target:      r.Target,
		DryRun:      r.DryRun,
		Domains:     []DomainJSON{},
		Unsupported: r.Unsupported,
		Summary:     r.Summary,
	}
	for _, d := range model.Domains() {
		wr := r.Domain(d)
		if wr == nil {
			continue
		}
		unchanged := wr.UnchangedItems()
		if unchanged == nil {
			unchanged = []string{}
		}
		out.Domains = append(out.Domains, DomainJSON{Domain: d, Written: wr.Written, Unchanged: unchanged})
	}
	return out
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r *model.SyncReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToJSON(r))
}

// WriteText writes r as a table with one row per enabled domain, followed
// by the summary line. Colour follows color.NoColor.
func WriteText(w io.Writer, r *model.SyncReport) error {
	bold := color.New(color.Bold)
	header := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)
	gray := color.New(color.FgHiBlack)
	yellow := color.New(color.FgYellow)

	title := fmt.Sprintf("%s → %s", r.Source, r.Target)
	if r.DryRun {
		title += " (dry run)"
	}
	if _, err := header.Fprintln(w, title); err != nil {
		return err
	}

	unsupported := make(map[model.Domain]bool, len(r.Unsupported))
	for _, d := range r.Unsupported {
		unsupported[d] = true
	}

	verb := "WRITTEN"
	if r.DryRun {
		verb = "PENDING"
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  %s\t%s\t%s\n", bold.Sprint("DOMAIN"), bold.Sprint(verb), bold.Sprint("UNCHANGED"))
	for _, d := range model.Domains() {
		wr := r.Domain(d)
		if wr == nil {
			continue
		}
		if unsupported[d] {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", d, gray.Sprint("-"), yellow.Sprint("unsupported"))
			continue
		}
		written := fmt.Sprint(wr.Written)
		if wr.Written > 0 {
			written = green.Sprint(wr.Written)
		}
		fmt.Fprintf(tw, "  %s\t%s\t%d\n", d, written, len(wr.Skipped))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := gray.Fprintln(w, r.Summary)
	return err
}
