// Package sync moves assets from one platform adapter to another.
//
// An Engine walks the enabled domains in a fixed order (commands, MCP
// servers, preferences, skills, hooks, agents), reads each from the source
// adapter and hands the result to the target adapter, which decides per
// item whether a write is needed. The engine holds no state between runs.
//
// Basic usage:
//
//	engine := sync.NewEngine(sync.WithLogger(logger))
//	report, err := engine.Run(source, target, model.SyncParams{}.WithAllDomains())
package sync
