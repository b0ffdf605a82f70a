package assetfs

import (
	"encoding/json"
	"log/slog"
	"slices"
	"sort"

	"github.com/thoreinstein/aisync/internal/errors"
	"github.com/thoreinstein/aisync/internal/model"
)

// ServerEntry is a pointer to a platform's JSON MCP server entry.
type ServerEntry[E any] interface {
	*E
	ToModel(name string) model.MCPServer
}

// EntryBuilder builds the entry for srv. existing is the entry currently on
// disk, or nil when there is none or it does not decode.
type EntryBuilder[E any] func(srv model.MCPServer, existing *E) *E

func serverEntries(doc *JSONDocument, key string) (map[string]json.RawMessage, error) {
	entries := make(map[string]json.RawMessage)
	if _, err := doc.Decode(key, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		// "mcpServers": null
		entries = make(map[string]json.RawMessage)
	}
	return entries, nil
}

// ReadServers returns the servers stored as an object under key of the JSON
// file at path, sorted by name. Entries that fail to decode or lack their
// transport's required field are skipped with a warning.
func ReadServers[E any, P ServerEntry[E]](logger *slog.Logger, path, key string) ([]model.MCPServer, error) {
	doc, err := LoadJSON(path)
	if err != nil {
		return nil, err
	}
	entries, err := serverEntries(doc, key)
	if err != nil {
		return nil, err
	}

	servers := make([]model.MCPServer, 0, len(entries))
	for name, raw := range entries {
		var entry E
		if err := json.Unmarshal(raw, &entry); err != nil {
			logger.Warn("skipping malformed MCP server", "server", name, "path", path, "error", err)
			continue
		}
		srv := P(&entry).ToModel(name)
		if !srv.Valid() {
			logger.Warn("skipping incomplete MCP server", "server", name, "path", path, "transport", srv.Transport)
			continue
		}
		servers = append(servers, srv)
	}

	sort.Slice(servers, func(i, j int) bool { return servers[i].Name < servers[j].Name })
	return servers, nil
}

// WriteServers merges servers into the object under key of the JSON file
// at path. Servers whose existing entry already matches are reported
// unchanged; entries not in servers and every other key are left alone.
// The file is saved only when something changed.
func WriteServers[E any, P ServerEntry[E]](path, key string, servers []model.MCPServer, opts model.WriteOptions, build EntryBuilder[E]) (model.WriteReport, error) {
	var report model.WriteReport
	if len(servers) == 0 {
		return report, nil
	}

	doc, err := LoadJSON(path)
	if err != nil {
		return report, err
	}
	entries, err := serverEntries(doc, key)
	if err != nil {
		return report, err
	}

	ordered := slices.Clone(servers)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Name < ordered[j].Name })

	for _, srv := range ordered {
		var existing *E
		if raw, ok := entries[srv.Name]; ok {
			var entry E
			if err := json.Unmarshal(raw, &entry); err == nil {
				if P(&entry).ToModel(srv.Name).Equal(srv) {
					report.Record(srv.Name, false)
					continue
				}
				existing = &entry
			}
		}

		raw, err := json.Marshal(build(srv, existing))
		if err != nil {
			return report, errors.Wrapf(err, "encoding MCP server %q", srv.Name)
		}
		entries[srv.Name] = raw
		report.Record(srv.Name, true)
	}

	if report.Written == 0 || opts.DryRun {
		return report, nil
	}
	if err := doc.Set(key, entries); err != nil {
		return report, err
	}
	return report, doc.Save()
}
