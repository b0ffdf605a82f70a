package assetfs

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/aisync/internal/errors"
	"github.com/thoreinstein/aisync/pkg/fileutil"
)

// ErrMalformedSettings is returned when an existing settings file cannot be
// parsed. Overwriting it would destroy data the adapter cannot merge.
var ErrMalformedSettings = errors.New("malformed settings file")

func malformed(err error, path string) error {
	return errors.Mark(errors.Wrapf(err, "parsing %s", path), ErrMalformedSettings)
}

// JSONDocument is a read-modify-write view of a JSON object file. Keys that
// are never Set or Deleted are written back with their original values.
type JSONDocument struct {
	path   string
	perm   os.FileMode
	fields map[string]json.RawMessage
}

// LoadJSON reads the JSON object at path. A missing or empty file yields an
// empty document.
func LoadJSON(path string) (*JSONDocument, error) {
	doc := &JSONDocument{
		path:   path,
		perm:   fileutil.ModeOr(path, FilePerm),
		fields: make(map[string]json.RawMessage),
	}

	data, found, err := fileutil.ReadOptional(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if !found || len(bytes.TrimSpace(data)) == 0 {
		return doc, nil
	}

	if err := json.Unmarshal(data, &doc.fields); err != nil {
		return nil, malformed(err, path)
	}
	if doc.fields == nil {
		// literal null
		doc.fields = make(map[string]json.RawMessage)
	}
	return doc, nil
}

// Path returns the file the document was loaded from.
func (d *JSONDocument) Path() string {
	return d.path
}

// Has reports whether key is present.
func (d *JSONDocument) Has(key string) bool {
	_, ok := d.fields[key]
	return ok
}

// Decode unmarshals the value under key into v and reports whether the key
// was present. A value of the wrong shape is ErrMalformedSettings.
func (d *JSONDocument) Decode(key string, v any) (bool, error) {
	raw, ok := d.fields[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, malformed(errors.Wrapf(err, "key %q", key), d.path)
	}
	return true, nil
}

// Set replaces the value under key.
func (d *JSONDocument) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encoding %q", key)
	}
	d.fields[key] = raw
	return nil
}

// Delete removes key.
func (d *JSONDocument) Delete(key string) {
	delete(d.fields, key)
}

// Save writes the document atomically, keeping the existing file mode.
func (d *JSONDocument) Save() error {
	if err := os.MkdirAll(filepath.Dir(d.path), DirPerm); err != nil {
		return errors.Wrapf(err, "creating directory for %s", d.path)
	}
	return fileutil.AtomicWriteJSONWithPerm(d.path, d.fields, d.perm)
}

// TOMLDocument is a read-modify-write view of a TOML file.
type TOMLDocument struct {
	path   string
	perm   os.FileMode
	fields map[string]any
}

// LoadTOML reads the TOML file at path. A missing or empty file yields an
// empty document.
func LoadTOML(path string) (*TOMLDocument, error) {
	doc := &TOMLDocument{
		path:   path,
		perm:   fileutil.ModeOr(path, FilePerm),
		fields: make(map[string]any),
	}

	data, found, err := fileutil.ReadOptional(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if !found || len(bytes.TrimSpace(data)) == 0 {
		return doc, nil
	}

	if err := toml.Unmarshal(data, &doc.fields); err != nil {
		return nil, malformed(err, path)
	}
	return doc, nil
}

// Path returns the file the document was loaded from.
func (d *TOMLDocument) Path() string {
	return d.path
}

// Get returns the value under key.
func (d *TOMLDocument) Get(key string) (any, bool) {
	v, ok := d.fields[key]
	return v, ok
}

// Table returns the table under key. A value under key that is not a table
// is ErrMalformedSettings.
func (d *TOMLDocument) Table(key string) (map[string]any, bool, error) {
	v, ok := d.fields[key]
	if !ok {
		return nil, false, nil
	}
	table, isTable := v.(map[string]any)
	if !isTable {
		return nil, true, malformed(errors.Newf("key %q is not a table", key), d.path)
	}
	return table, true, nil
}

// Set replaces the value under key.
func (d *TOMLDocument) Set(key string, v any) {
	d.fields[key] = v
}

// Delete removes key.
func (d *TOMLDocument) Delete(key string) {
	delete(d.fields, key)
}

// Save writes the document atomically, keeping the existing file mode.
func (d *TOMLDocument) Save() error {
	if err := os.MkdirAll(filepath.Dir(d.path), DirPerm); err != nil {
		return errors.Wrapf(err, "creating directory for %s", d.path)
	}
	return fileutil.AtomicWriteTOMLWithPerm(d.path, d.fields, d.perm)
}
