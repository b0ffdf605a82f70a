package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMCPServer_Normalize(t *testing.T) {
	s := MCPServer{
		Name:    "github",
		Command: "npx",
		Args:    []string{},
		Env:     map[string]string{},
		URL:     "https://ignored.example.com",
		Enabled: true,
	}

	got := s.Normalize()
	assert.Equal(t, TransportStdio, got.Transport, "empty transport defaults to stdio")
	assert.Nil(t, got.Args)
	assert.Nil(t, got.Env)
	assert.Empty(t, got.URL, "url is meaningless for stdio")
}

func TestMCPServer_Equal(t *testing.T) {
	base := MCPServer{
		Name:      "api",
		Transport: TransportHTTP,
		URL:       "https://api.example.com/mcp",
		Headers:   map[string]string{"Authorization": "Bearer x"},
		Enabled:   true,
	}

	tests := []struct {
		name  string
		other MCPServer
		want  bool
	}{
		{"identical", base, true},
		{
			name: "stdio fields ignored for http",
			other: func() MCPServer {
				o := base
				o.Command = "node"
				return o
			}(),
			want: true,
		},
		{
			name: "different header",
			other: func() MCPServer {
				o := base
				o.Headers = map[string]string{"Authorization": "Bearer y"}
				return o
			}(),
			want: false,
		},
		{
			name: "disabled",
			other: func() MCPServer {
				o := base
				o.Enabled = false
				return o
			}(),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Equal(tt.other))
		})
	}
}

func TestMCPServer_Valid(t *testing.T) {
	assert.True(t, MCPServer{Name: "a", Command: "npx"}.Valid())
	assert.True(t, MCPServer{Name: "a", Transport: TransportHTTP, URL: "https://x"}.Valid())
	assert.False(t, MCPServer{Name: "a", Transport: TransportHTTP}.Valid())
	assert.False(t, MCPServer{Command: "npx"}.Valid())
	assert.False(t, MCPServer{Name: "a", Transport: "carrier-pigeon", Command: "x"}.Valid())
}
