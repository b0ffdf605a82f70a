package model

import (
	"fmt"
	"strings"
)

// SkipKind classifies why an item was not written.
type SkipKind string

// SkipUnchanged means the target already holds identical content.
const SkipUnchanged SkipKind = "unchanged"

// SkipReason records one item that was not written.
type SkipReason struct {
	Kind SkipKind
	Item string
}

// Unchanged returns the SkipReason for an item whose target is already current.
func Unchanged(item string) SkipReason {
	return SkipReason{Kind: SkipUnchanged, Item: item}
}

func (r SkipReason) String() string {
	return fmt.Sprintf("%s: %s", r.Kind, r.Item)
}

// WriteReport is the outcome of one adapter write operation.
type WriteReport struct {
	Written int
	Skipped []SkipReason
}

// Record counts item as written when changed, otherwise as unchanged.
func (r *WriteReport) Record(item string, changed bool) {
	if changed {
		r.Written++
		return
	}
	r.Skipped = append(r.Skipped, Unchanged(item))
}

// Merge folds other into r.
func (r *WriteReport) Merge(other WriteReport) {
	r.Written += other.Written
	r.Skipped = append(r.Skipped, other.Skipped...)
}

// UnchangedItems returns the items skipped as unchanged, in order.
func (r WriteReport) UnchangedItems() []string {
	var items []string
	for _, s := range r.Skipped {
		if s.Kind == SkipUnchanged {
			items = append(items, s.Item)
		}
	}
	return items
}

// SyncReport aggregates the per-domain reports of one sync run.
// A nil domain report means the domain was not enabled.
type SyncReport struct {
	Source string
	Target string
	DryRun bool

	Commands    *WriteReport
	MCPServers  *WriteReport
	Preferences *WriteReport
	Skills      *WriteReport
	Hooks       *WriteReport
	Agents      *WriteReport

	// Unsupported lists enabled domains that one side of the pair lacks.
	Unsupported []Domain

	Summary string
}

// Domain returns the report slot for d.
func (r *SyncReport) Domain(d Domain) *WriteReport {
	switch d {
	case DomainCommands:
		return r.Commands
	case DomainMCPServers:
		return r.MCPServers
	case DomainPreferences:
		return r.Preferences
	case DomainSkills:
		return r.Skills
	case DomainHooks:
		return r.Hooks
	case DomainAgents:
		return r.Agents
	default:
		return nil
	}
}

// SetDomain stores report in the slot for d.
func (r *SyncReport) SetDomain(d Domain, report *WriteReport) {
	switch d {
	case DomainCommands:
		r.Commands = report
	case DomainMCPServers:
		r.MCPServers = report
	case DomainPreferences:
		r.Preferences = report
	case DomainSkills:
		r.Skills = report
	case DomainHooks:
		r.Hooks = report
	case DomainAgents:
		r.Agents = report
	}
}

// Totals sums written and skipped counts across all enabled domains.
func (r *SyncReport) Totals() (written, skipped int) {
	for _, d := range Domains() {
		if wr := r.Domain(d); wr != nil {
			written += wr.Written
			skipped += len(wr.Skipped)
		}
	}
	return written, skipped
}

// Summarize renders the one-line summary stored in Summary.
func (r *SyncReport) Summarize() string {
	parts := make([]string, 0, len(Domains()))
	for _, d := range Domains() {
		wr := r.Domain(d)
		if wr == nil {
			continue
		}
		verb := "written"
		if r.DryRun {
			verb = "pending"
		}
		parts = append(parts, fmt.Sprintf("%s: %d %s, %d unchanged", d, wr.Written, verb, len(wr.Skipped)))
	}
	if len(parts) == 0 {
		return "nothing to sync"
	}

	summary := strings.Join(parts, "; ")
	if r.DryRun {
		summary = "dry run: " + summary
	}
	return summary
}
