package model

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Command is one file-backed asset: a slash command, a skill document, a
// hook script or a sub-agent definition.
type Command struct {
	// Name is the logical identifier. It is flat for commands, hooks and
	// agents and a slash-delimited relative path for nested skills.
	Name string

	// Content is the raw file content, preserved exactly.
	Content []byte

	// SourcePath records where the asset was discovered. Diagnostic only.
	SourcePath string

	// Modified is the source file's modification time.
	Modified time.Time

	// Hash is HashContent(Content).
	Hash string
}

// NewCommand builds a Command and computes its hash.
func NewCommand(name string, content []byte, sourcePath string, modified time.Time) Command {
	return Command{
		Name:       name,
		Content:    content,
		SourcePath: sourcePath,
		Modified:   modified,
		Hash:       HashContent(content),
	}
}

// HashContent returns the hex-encoded SHA-256 digest of content.
func HashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Names returns the logical names of cmds in order.
func Names(cmds []Command) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}
