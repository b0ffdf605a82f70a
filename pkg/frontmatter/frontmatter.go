package frontmatter

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/aisync/internal/errors"
)

const delimiter = "---"

var (
	// ErrMissingFrontmatter is returned when no delimited header is found.
	ErrMissingFrontmatter = errors.New("missing frontmatter")

	// ErrInvalidHeader is returned when the header is not a YAML mapping.
	ErrInvalidHeader = errors.New("invalid frontmatter header")
)

// Split separates content into its raw header and body. ok is false when
// content does not open with a delimiter line or the header is never closed;
// in that case body is the full content.
func Split(content []byte) (header, body []byte, ok bool) {
	first, rest, found := nextLine(content)
	if !found || string(first) != delimiter {
		return nil, content, false
	}

	offset := len(content) - len(rest)
	for len(rest) > 0 {
		line, next, _ := nextLine(rest)
		if string(line) == delimiter {
			start := len(content) - len(rest)
			return content[offset:start], next, true
		}
		rest = next
	}

	return nil, content, false
}

// nextLine returns the first line of b without its terminator, the
// remainder after the terminator, and whether a terminator was seen.
func nextLine(b []byte) (line, rest []byte, terminated bool) {
	i := bytes.IndexByte(b, '\n')
	if i < 0 {
		return bytes.TrimSuffix(b, []byte("\r")), nil, false
	}
	return bytes.TrimSuffix(b[:i], []byte("\r")), b[i+1:], true
}

// Parse extracts YAML frontmatter into matter and returns the body.
// If no frontmatter is present, matter is untouched and the full content
// is returned as body.
func Parse[T any](r io.Reader, matter *T) ([]byte, error) {
	return parse(r, matter, false)
}

// MustParse is like Parse but returns ErrMissingFrontmatter if no
// frontmatter is found.
func MustParse[T any](r io.Reader, matter *T) ([]byte, error) {
	return parse(r, matter, true)
}

func parse[T any](r io.Reader, matter *T, required bool) ([]byte, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading frontmatter")
	}

	header, body, ok := Split(content)
	if !ok {
		if required {
			return nil, ErrMissingFrontmatter
		}
		return content, nil
	}

	if err := yaml.Unmarshal(header, matter); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decoding frontmatter"), ErrInvalidHeader)
	}

	return body, nil
}
