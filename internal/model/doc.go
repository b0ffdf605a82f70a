// Package model defines the canonical, ecosystem-neutral representation of
// the assets aisync moves between AI coding-agent installations.
//
// Every adapter reads its native files into these types and writes them back
// out, so the orchestrator and all adapters share one vocabulary:
//
//   - [Command] carries commands, skills, hooks and sub-agents as raw bytes
//   - [MCPServer] describes one MCP server connection
//   - [Preferences] holds user preferences such as the selected model
//   - [FieldSupport] is an adapter's capability matrix
//   - [WriteReport] and [SyncReport] describe the outcome of writes
//
// Values are transient: they are built fresh for each invocation and never
// cached between runs.
package model
