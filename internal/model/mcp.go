package model

import (
	"maps"
	"slices"
)

// Transport identifies how a client talks to an MCP server.
type Transport string

const (
	// TransportStdio runs the server as a local process over stdin/stdout.
	TransportStdio Transport = "stdio"

	// TransportHTTP connects to a remote server over HTTP.
	TransportHTTP Transport = "http"
)

// MCPServer is a canonical MCP server connection definition.
type MCPServer struct {
	Name      string
	Transport Transport

	// Command, Args and Env are meaningful for TransportStdio.
	Command string
	Args    []string
	Env     map[string]string

	// URL and Headers are meaningful for TransportHTTP.
	URL     string
	Headers map[string]string

	// Enabled is false only when the source carried an explicit disabling flag.
	Enabled bool
}

// Normalize returns a copy with fields that are meaningless for the
// transport cleared and empty collections set to nil.
func (s MCPServer) Normalize() MCPServer {
	out := MCPServer{
		Name:      s.Name,
		Transport: s.Transport,
		Enabled:   s.Enabled,
	}
	if out.Transport == "" {
		out.Transport = TransportStdio
	}

	switch out.Transport {
	case TransportHTTP:
		out.URL = s.URL
		if len(s.Headers) > 0 {
			out.Headers = maps.Clone(s.Headers)
		}
	default:
		out.Command = s.Command
		if len(s.Args) > 0 {
			out.Args = slices.Clone(s.Args)
		}
		if len(s.Env) > 0 {
			out.Env = maps.Clone(s.Env)
		}
	}
	return out
}

// Equal reports whether s and other describe the same connection.
func (s MCPServer) Equal(other MCPServer) bool {
	a, b := s.Normalize(), other.Normalize()
	return a.Name == b.Name &&
		a.Transport == b.Transport &&
		a.Enabled == b.Enabled &&
		a.Command == b.Command &&
		slices.Equal(a.Args, b.Args) &&
		maps.Equal(a.Env, b.Env) &&
		a.URL == b.URL &&
		maps.Equal(a.Headers, b.Headers)
}

// Valid reports whether the server has the fields its transport requires.
func (s MCPServer) Valid() bool {
	if s.Name == "" {
		return false
	}
	switch s.Transport {
	case TransportHTTP:
		return s.URL != ""
	case TransportStdio, "":
		return s.Command != ""
	default:
		return false
	}
}
