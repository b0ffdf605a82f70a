package codex

import (
	"maps"

	"github.com/thoreinstein/aisync/internal/errors"
	"github.com/thoreinstein/aisync/internal/model"
)

// Keys of an [mcp_servers.<name>] table owned by the adapter. Any other key
// (startup_timeout_sec, bearer_token_env_var, ...) is carried over.
const (
	keyCommand     = "command"
	keyArgs        = "args"
	keyEnv         = "env"
	keyURL         = "url"
	keyHTTPHeaders = "http_headers"
	keyEnabled     = "enabled"
)

var ownedServerKeys = []string{keyCommand, keyArgs, keyEnv, keyURL, keyHTTPHeaders, keyEnabled}

// errBadField reports an mcp_servers value of the wrong TOML type.
var errBadField = errors.New("unexpected value type")

// serverFromTable decodes one mcp_servers entry. A table with a url and no
// command is an HTTP server.
func serverFromTable(name string, table map[string]any) (model.MCPServer, error) {
	srv := model.MCPServer{Name: name, Enabled: true}

	var err error
	if srv.Command, err = stringField(table, keyCommand); err != nil {
		return srv, err
	}
	if srv.Args, err = stringSlice(table, keyArgs); err != nil {
		return srv, err
	}
	if srv.Env, err = stringMap(table, keyEnv); err != nil {
		return srv, err
	}
	if srv.URL, err = stringField(table, keyURL); err != nil {
		return srv, err
	}
	if srv.Headers, err = stringMap(table, keyHTTPHeaders); err != nil {
		return srv, err
	}
	if v, ok := table[keyEnabled]; ok {
		enabled, isBool := v.(bool)
		if !isBool {
			return srv, errors.Wrapf(errBadField, "%s: %T", keyEnabled, v)
		}
		srv.Enabled = enabled
	}

	srv.Transport = model.TransportStdio
	if srv.URL != "" && srv.Command == "" {
		srv.Transport = model.TransportHTTP
	}
	return srv.Normalize(), nil
}

// serverToTable encodes srv over a copy of existing so unowned keys
// survive. existing may be nil.
func serverToTable(srv model.MCPServer, existing map[string]any) map[string]any {
	srv = srv.Normalize()
	out := make(map[string]any, len(existing)+4)
	maps.Copy(out, existing)
	for _, k := range ownedServerKeys {
		delete(out, k)
	}

	switch srv.Transport {
	case model.TransportHTTP:
		out[keyURL] = srv.URL
		if len(srv.Headers) > 0 {
			out[keyHTTPHeaders] = srv.Headers
		}
	default:
		out[keyCommand] = srv.Command
		if len(srv.Args) > 0 {
			out[keyArgs] = srv.Args
		}
		if len(srv.Env) > 0 {
			out[keyEnv] = srv.Env
		}
	}

	if !srv.Enabled {
		out[keyEnabled] = false
	} else if _, had := existing[keyEnabled]; had {
		out[keyEnabled] = true
	}
	return out
}

func stringField(table map[string]any, key string) (string, error) {
	v, ok := table[key]
	if !ok {
		return "", nil
	}
	s, isString := v.(string)
	if !isString {
		return "", errors.Wrapf(errBadField, "%s: %T", key, v)
	}
	return s, nil
}

func stringSlice(table map[string]any, key string) ([]string, error) {
	v, ok := table[key]
	if !ok {
		return nil, nil
	}
	switch list := v.(type) {
	case []string:
		return list, nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, isString := item.(string)
			if !isString {
				return nil, errors.Wrapf(errBadField, "%s item: %T", key, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, errors.Wrapf(errBadField, "%s: %T", key, v)
	}
}

func stringMap(table map[string]any, key string) (map[string]string, error) {
	v, ok := table[key]
	if !ok {
		return nil, nil
	}
	switch m := v.(type) {
	case map[string]string:
		return m, nil
	case map[string]any:
		out := make(map[string]string, len(m))
		for k, item := range m {
			s, isString := item.(string)
			if !isString {
				return nil, errors.Wrapf(errBadField, "%s.%s: %T", key, k, item)
			}
			out[k] = s
		}
		return out, nil
	default:
		return nil, errors.Wrapf(errBadField, "%s: %T", key, v)
	}
}
