package assetfs

import (
	"path/filepath"
	"strings"

	"github.com/thoreinstein/aisync/internal/errors"
)

// ErrUnsafeName is returned when a logical name sanitizes to nothing or would
// resolve outside the adapter root.
var ErrUnsafeName = errors.New("unsafe asset name")

// NamePolicy maps logical names to safe relative paths.
type NamePolicy int

const (
	// NestedNames keeps hierarchy: every segment is stripped to
	// [A-Za-z0-9_-] and empty segments are dropped.
	NestedNames NamePolicy = iota

	// FlatNames strips separators entirely and removes leading dots.
	// Inner dots survive, so "pre-commit.sh" stays as is.
	FlatNames

	// FlattenedNames sanitizes like NestedNames and joins the segments
	// with "-" for ecosystems that only load one directory level.
	FlattenedNames
)

func (p NamePolicy) String() string {
	switch p {
	case NestedNames:
		return "nested"
	case FlatNames:
		return "flat"
	case FlattenedNames:
		return "flattened"
	default:
		return "unknown"
	}
}

// RelPath returns the slash-separated relative path for name.
func (p NamePolicy) RelPath(name string) (string, error) {
	var out string
	switch p {
	case FlatNames:
		out = flatName(name)
	case FlattenedNames:
		out = strings.Join(segments(name), "-")
	default:
		out = strings.Join(segments(name), "/")
	}
	if out == "" {
		return "", errors.Wrapf(ErrUnsafeName, "%q", name)
	}
	return out, nil
}

func segments(name string) []string {
	parts := strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' })
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if seg := keepSafe(part); seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

func keepSafe(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}

func flatName(name string) string {
	stripped := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == 0 {
			return -1
		}
		return r
	}, name)
	return strings.TrimLeft(strings.TrimSpace(stripped), ".")
}

// Join resolves the slash-separated rel under root and verifies the result
// stays inside root.
func Join(root, rel string) (string, error) {
	cleanRoot := filepath.Clean(root)
	path := filepath.Join(cleanRoot, filepath.FromSlash(rel))

	inside, err := filepath.Rel(cleanRoot, path)
	if err != nil || inside == "." || inside == ".." || strings.HasPrefix(inside, ".."+string(filepath.Separator)) {
		return "", errors.Wrapf(ErrUnsafeName, "%q escapes %s", rel, root)
	}
	return path, nil
}

// Resolve sanitizes name with policy, appends suffix and joins the result
// under dir.
func Resolve(dir string, policy NamePolicy, name, suffix string) (string, error) {
	rel, err := policy.RelPath(name)
	if err != nil {
		return "", err
	}
	return Join(dir, rel+suffix)
}
