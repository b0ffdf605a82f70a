// Package claude is the Claude Code adapter.
//
// Layout under the configuration root (default ~/.claude):
//
//	commands/**/*.md                      slash commands (name = file stem)
//	plugins/cache/**/commands/*.md        plugin commands
//	plugins/marketplaces/**/commands/*.md marketplace commands (opt-in)
//	skills/<nested/name>/SKILL.md         skills
//	plugins/cache/**/skills/...           plugin skills
//	hooks/**                              hook scripts (name = file name)
//	agents/**/*.md                        sub-agents
//	settings.json                         mcpServers and model
//
// settings.json is shared with every other Claude Code setting. Only the
// mcpServers entries being synced and the model key are rewritten;
// permissions, hooks, env and any key this package does not know survive,
// as do unknown keys inside an MCP server entry.
package claude
