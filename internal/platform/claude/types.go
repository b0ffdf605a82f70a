package claude

import (
	"encoding/json"
	"slices"

	"github.com/thoreinstein/aisync/internal/assetfs"
	"github.com/thoreinstein/aisync/internal/model"
)

// Claude Code transport type values.
const (
	typeStdio = "stdio"
	typeHTTP  = "http"
	typeSSE   = "sse"
)

var knownTypes = []string{typeStdio, typeHTTP, typeSSE}

// MCPServer is one entry of the mcpServers object in settings.json.
// Keys not modeled here are kept in extra and written back unchanged.
type MCPServer struct {
	Type     string            `json:"type,omitempty"`
	Command  string            `json:"command,omitempty"`
	Args     []string          `json:"args,omitempty"`
	Env      map[string]string `json:"env,omitempty"`
	URL      string            `json:"url,omitempty"`
	Headers  map[string]string `json:"headers,omitempty"`
	Disabled bool              `json:"disabled,omitempty"`

	extra map[string]json.RawMessage
}

var mcpServerKeys = []string{"type", "command", "args", "env", "url", "headers", "disabled"}

// mcpServerFields is MCPServer without its JSON methods.
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

// transport maps the entry's type to a canonical transport. An entry
// without a type that only has a URL is remote.
func (s *MCPServer) transport() model.Transport {
	switch s.Type {
	case typeHTTP, typeSSE:
		return model.TransportHTTP
	case "":
		if s.URL != "" && s.Command == "" {
			return model.TransportHTTP
		}
	}
	return model.TransportStdio
}

// ToModel converts the entry to its canonical form.
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

// FromModel builds the entry for srv, carrying over the unknown keys of
// existing when it is non-nil.
func FromModel(srv model.MCPServer, existing *MCPServer) *MCPServer {
	srv = srv.Normalize()
	out := &MCPServer{Disabled: !srv.Enabled}
	if existing != nil {
		out.extra = existing.extra
	}

	switch srv.Transport {
	case model.TransportHTTP:
		out.Type = typeHTTP
		out.URL = srv.URL
		out.Headers = srv.Headers
	default:
		out.Type = typeStdio
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
