package frontmatter

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/aisync/internal/errors"
)

// Document is a Markdown file split into an ordered YAML header and a body.
// The body bytes are written back exactly as read.
type Document struct {
	header    *yaml.Node
	hasHeader bool

	// Body is everything after the closing delimiter.
	Body []byte
}

// NewDocument returns a document with an empty header and the given body.
func NewDocument(body []byte) *Document {
	return &Document{
		header: &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"},
		Body:   body,
	}
}

// ParseDocument parses content into a Document. Content without a header
// yields a document whose HasHeader reports false and whose Body is the
// full content. A header that is not a YAML mapping returns ErrInvalidHeader.
func ParseDocument(content []byte) (*Document, error) {
	raw, body, ok := Split(content)
	if !ok {
		return NewDocument(content), nil
	}

	doc := NewDocument(body)
	doc.hasHeader = true

	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decoding frontmatter"), ErrInvalidHeader)
	}

	switch {
	case root.Kind == 0, root.Kind == yaml.DocumentNode && len(root.Content) == 0:
		// empty header
	case root.Kind == yaml.DocumentNode && len(root.Content) == 1 && root.Content[0].Kind == yaml.MappingNode:
		doc.header = root.Content[0]
	default:
		return nil, errors.Wrap(ErrInvalidHeader, "header is not a mapping")
	}

	return doc, nil
}

// HasHeader reports whether the parsed content carried a delimited header.
func (d *Document) HasHeader() bool {
	return d.hasHeader
}

// Keys returns the header keys in document order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.header.Content)/2)
	for i := 0; i+1 < len(d.header.Content); i += 2 {
		keys = append(keys, d.header.Content[i].Value)
	}
	return keys
}

// Has reports whether key is present in the header.
func (d *Document) Has(key string) bool {
	return d.index(key) >= 0
}

// Get returns the scalar value stored under key. ok is false when the key
// is missing or its value is not a scalar.
func (d *Document) Get(key string) (string, bool) {
	i := d.index(key)
	if i < 0 {
		return "", false
	}
	v := d.header.Content[i+1]
	if v.Kind != yaml.ScalarNode {
		return "", false
	}
	return v.Value, true
}

// Set stores a string value under key, replacing an existing value in
// place or appending the key at the end of the header.
func (d *Document) Set(key, value string) {
	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
	if i := d.index(key); i >= 0 {
		d.header.Content[i+1] = node
		return
	}
	d.header.Content = append(d.header.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		node,
	)
}

// Delete removes key from the header and reports whether it was present.
func (d *Document) Delete(key string) bool {
	i := d.index(key)
	if i < 0 {
		return false
	}
	d.header.Content = append(d.header.Content[:i], d.header.Content[i+2:]...)
	return true
}

// Bytes renders the document with a delimited header followed by the body.
// An empty header renders as two adjacent delimiter lines.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(delimiter + "\n")

	if len(d.header.Content) > 0 {
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(d.header); err != nil {
			return nil, errors.Wrap(err, "encoding frontmatter")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, "encoding frontmatter")
		}
	}

	buf.WriteString(delimiter + "\n")
	buf.Write(d.Body)
	return buf.Bytes(), nil
}

func (d *Document) index(key string) int {
	for i := 0; i+1 < len(d.header.Content); i += 2 {
		if d.header.Content[i].Value == key {
			return i
		}
	}
	return -1
}
