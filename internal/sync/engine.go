package sync

import (
	"log/slog"

	"github.com/thoreinstein/aisync/internal/errors"
	"github.com/thoreinstein/aisync/internal/model"
	"github.com/thoreinstein/aisync/internal/platform"
)

// Engine runs sync operations between two adapters.
type Engine struct {
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for progress and summary output.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// syncStep moves one domain from source to target.
type syncStep func(source, target platform.Agent, params model.SyncParams) (model.WriteReport, error)

var steps = map[model.Domain]syncStep{
	model.DomainCommands:    syncCommands,
	model.DomainMCPServers:  syncMCPServers,
	model.DomainPreferences: syncPreferences,
	model.DomainSkills: func(source, target platform.Agent, params model.SyncParams) (model.WriteReport, error) {
		return syncSet(source.ReadSkills, target.WriteSkills, params)
	},
	model.DomainHooks: func(source, target platform.Agent, params model.SyncParams) (model.WriteReport, error) {
		return syncSet(source.ReadHooks, target.WriteHooks, params)
	},
	model.DomainAgents: func(source, target platform.Agent, params model.SyncParams) (model.WriteReport, error) {
		return syncSet(source.ReadAgents, target.WriteAgents, params)
	},
}

// Run syncs every domain enabled in params from source to target.
//
// A domain either adapter does not support gets an empty report and is
// listed in Unsupported. The first failing domain stops the run and a
// *DomainError is returned without a report; domains already synced keep
// their writes.
func (e *Engine) Run(source, target platform.Agent, params model.SyncParams) (*model.SyncReport, error) {
	if source == nil || target == nil {
		return nil, errors.New("sync requires a source and a target adapter")
	}

	report := &model.SyncReport{
		Source: source.Name(),
		Target: target.Name(),
		DryRun: params.DryRun,
	}
	logger := e.logger.With("source", source.Name(), "target", target.Name())

	var completed []model.Domain
	for _, d := range model.Domains() {
		if !params.Enabled(d) {
			continue
		}

		if !source.Supports().Has(d) || !target.Supports().Has(d) {
			logger.Debug("domain unsupported", "domain", d)
			report.SetDomain(d, &model.WriteReport{})
			report.Unsupported = append(report.Unsupported, d)
			completed = append(completed, d)
			continue
		}

		wr, err := steps[d](source, target, params)
		if err != nil {
			return nil, &DomainError{Domain: d, Completed: completed, Err: err}
		}
		logger.Debug("domain synced", "domain", d, "written", wr.Written, "unchanged", len(wr.Skipped), "dry_run", params.DryRun)
		report.SetDomain(d, &wr)
		completed = append(completed, d)
	}

	report.Summary = report.Summarize()
	written, skipped := report.Totals()
	logger.Info("sync complete", "written", written, "unchanged", skipped, "dry_run", params.DryRun)
	return report, nil
}

func readOptions(params model.SyncParams) model.ReadOptions {
	return model.ReadOptions{IncludeMarketplace: params.IncludeMarketplace}
}

func writeOptions(params model.SyncParams) model.WriteOptions {
	return model.WriteOptions{DryRun: params.DryRun}
}

func syncCommands(source, target platform.Agent, params model.SyncParams) (model.WriteReport, error) {
	items, err := source.ReadCommands(readOptions(params))
	if err != nil {
		return model.WriteReport{}, errors.Wrapf(err, "reading %s commands", source.Name())
	}

	if params.SkipExistingCommands {
		existing, err := target.ReadCommands(readOptions(params))
		if err != nil {
			return model.WriteReport{}, errors.Wrapf(err, "reading %s commands", target.Name())
		}
		items = withoutNames(items, model.Names(existing))
	}

	return target.WriteCommands(items, writeOptions(params))
}

func syncMCPServers(source, target platform.Agent, params model.SyncParams) (model.WriteReport, error) {
	servers, err := source.ReadMCPServers()
	if err != nil {
		return model.WriteReport{}, errors.Wrapf(err, "reading %s MCP servers", source.Name())
	}
	return target.WriteMCPServers(servers, writeOptions(params))
}

func syncPreferences(source, target platform.Agent, params model.SyncParams) (model.WriteReport, error) {
	prefs, err := source.ReadPreferences()
	if err != nil {
		return model.WriteReport{}, errors.Wrapf(err, "reading %s preferences", source.Name())
	}
	return target.WritePreferences(prefs, writeOptions(params))
}

func syncSet(
	read func() ([]model.Command, error),
	write func([]model.Command, model.WriteOptions) (model.WriteReport, error),
	params model.SyncParams,
) (model.WriteReport, error) {
	items, err := read()
	if err != nil {
		return model.WriteReport{}, err
	}
	return write(items, writeOptions(params))
}

func withoutNames(items []model.Command, names []string) []model.Command {
	if len(names) == 0 {
		return items
	}
	skip := make(map[string]bool, len(names))
	for _, n := range names {
		skip[n] = true
	}
	out := make([]model.Command, 0, len(items))
	for _, item := range items {
		if !skip[item.Name] {
			out = append(out, item)
		}
	}
	return out
}
