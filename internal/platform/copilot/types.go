package copilot

import (
	"encoding/json"
	"slices"

	"github.com/thoreinstein/aisync/internal/assetfs"
	"github.com/thoreinstein/aisync/internal/model"
)

// Copilot CLI transport type values.
const (
	typeLocal = "local"
	typeStdio = "stdio"
	typeHTTP  = "http"
	typeSSE   = "sse"
)

var knownTypes = []string{typeLocal, typeStdio, typeHTTP, typeSSE}

// defaultTools enables every tool a new server exposes.
var defaultTools = []string{"*"}

// MCPServer is one entry of the mcpServers object in mcp-config.json.
// Keys not modeled here are kept in extra and written back unchanged.
type MCPServer struct {
	Type     string            `json:"type,omitempty"`
	Command  string            `json:"command,omitempty"`
	Args     []string          `json:"args,omitempty"`
	Env      map[string]string `json:"env,omitempty"`
	URL      string            `json:"url,omitempty"`
	Headers  map[string]string `json:"headers,omitempty"`
	Tools    []string          `json:"tools,omitempty"`
	Disabled bool              `json:"disabled,omitempty"`

	extra map[string]json.RawMessage
}

var mcpServerKeys = []string{"type", "command", "args", "env", "url", "headers", "tools", "disabled"}

type mcpServerFields MCPServer

// UnmarshalJSON implements json.Unmarshaler, capturing unknown keys.
func (s *MCPServer) UnmarshalJSON(data []byte) error {
	var fields mcpServerFields
	extra, err := assetfs.DecodeWithExtra(data, &fields, mcpServerKeys...)
	if err != nil {
		return err
	}
	*s = MCPServer(fields)
	s.extra = extra
	return nil
}

// MarshalJSON implements json.Marshaler, re-emitting unknown keys.
func (s MCPServer) MarshalJSON() ([]byte, error) {
	return assetfs.EncodeWithExtra(mcpServerFields(s), s.extra)
}

func (s *MCPServer) transport() model.Transport {
	switch s.Type {
	case typeHTTP, typeSSE:
		return model.TransportHTTP
	case typeLocal, typeStdio:
		return model.TransportStdio
	}
	if s.URL != "" && s.Command == "" {
		return model.TransportHTTP
	}
	return model.TransportStdio
}

// ToModel converts the entry to its canonical form. The tool allow-list
// has no canonical counterpart and is dropped.
func (s *MCPServer) ToModel(name string) model.MCPServer {
	return model.MCPServer{
		Name:      name,
		Transport: s.transport(),
		Command:   s.Command,
		Args:      s.Args,
		Env:       s.Env,
		URL:       s.URL,
		Headers:   s.Headers,
		Enabled:   !s.Disabled,
	}.Normalize()
}

// FromModel builds the entry for srv. The tool allow-list and unknown keys
// come from existing when it is non-nil; new entries allow every tool.
func FromModel(srv model.MCPServer, existing *MCPServer) *MCPServer {
	srv = srv.Normalize()
	out := &MCPServer{
		Disabled: !srv.Enabled,
		Tools:    slices.Clone(defaultTools),
	}
	if existing != nil {
		out.extra = existing.extra
		out.Tools = existing.Tools
	}

	switch srv.Transport {
	case model.TransportHTTP:
		out.Type = typeHTTP
		out.URL = srv.URL
		out.Headers = srv.Headers
	default:
		out.Type = typeLocal
		out.Command = srv.Command
		out.Args = srv.Args
		out.Env = srv.Env
	}
	// keep the spelling of an existing entry on the same transport
	if existing != nil && slices.Contains(knownTypes, existing.Type) && existing.transport() == srv.Transport {
		out.Type = existing.Type
	}
	return out
}
