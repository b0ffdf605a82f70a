// Package copilot implements the platform adapter for GitHub Copilot CLI.
//
// Copilot CLI keeps MCP servers in mcp-config.json, the selected model in
// config.json, skills under skills/ and custom agents as flat
// agents/<name>.agent.md files. It has no slash commands or hooks.
//
// Agents written here are transformed: the Copilot runtime rejects the
// Claude-only model and color header keys and expects a target key, so
// those are adjusted while the document body passes through unchanged.
package copilot
