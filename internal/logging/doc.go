// Package logging configures log/slog for aisync.
//
// Text output goes through [Handler], which colours levels when the
// destination is a terminal. JSON output uses the standard JSON handler.
// Every handler built by [New] masks secrets: attribute keys that look like
// credentials, values carrying well-known token prefixes, URL passwords and
// env maps of MCP servers.
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(verbosity),
//		Format: logging.ParseFormat(format),
//	})
//	ctx = logging.NewContext(ctx, logger)
//
// Tests use [ForTest], which routes output through t.Log.
package logging
