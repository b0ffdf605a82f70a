// Package codex implements the platform adapter for OpenAI Codex CLI.
//
// Codex keeps custom prompts under prompts/, skills under skills/ and its
// settings in a single config.toml holding the model and the mcp_servers
// tables. Hooks and sub-agents have no Codex equivalent and are no-ops.
package codex
