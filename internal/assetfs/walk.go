package assetfs

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thoreinstein/aisync/internal/errors"
	"github.com/thoreinstein/aisync/internal/model"
)

// DefaultMaxDepth bounds every discovery walk.
const DefaultMaxDepth = 16

// Found is one file discovered by Walk.
type Found struct {
	// Path is the absolute path of the file.
	Path string

	// Rel is the slash-separated path relative to the walk root.
	Rel string

	// Modified is the file's modification time.
	Modified time.Time
}

// Dir returns the slash-separated directory part of Rel, or "" for files
// directly under the walk root.
func (f Found) Dir() string {
	dir := filepath.ToSlash(filepath.Dir(filepath.FromSlash(f.Rel)))
	if dir == "." {
		return ""
	}
	return dir
}

// Base returns the file name.
func (f Found) Base() string {
	return filepath.Base(f.Path)
}

// WalkOptions tunes Walk.
type WalkOptions struct {
	// MaxDepth is the deepest directory level descended into. Zero means
	// DefaultMaxDepth.
	MaxDepth int

	// Match filters regular files by their slash-separated relative path.
	// A nil Match accepts every file.
	Match func(rel string) bool
}

// Walk returns the regular files under root in lexical order. Hidden path
// components and symlinks are skipped. A missing root yields no results and
// no error. A root that is itself a symlink is resolved first.
func Walk(root string, opts WalkOptions) ([]Found, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "resolving %s", root)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, errors.Wrapf(err, "checking %s", root)
	}
	if !info.IsDir() {
		return nil, nil
	}

	var found []Found
	err = filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == resolved {
			return nil
		}

		rel, err := filepath.Rel(resolved, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if strings.HasPrefix(d.Name(), ".") || d.Type()&fs.ModeSymlink != 0 {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		depth := strings.Count(rel, "/") + 1
		if d.IsDir() {
			if depth >= maxDepth {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if opts.Match != nil && !opts.Match(rel) {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return err
		}
		found = append(found, Found{Path: path, Rel: rel, Modified: fi.ModTime()})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking %s", root)
	}

	return found, nil
}

// IsMarkdown reports whether rel names a markdown file.
func IsMarkdown(rel string) bool {
	return strings.EqualFold(filepath.Ext(rel), ".md")
}

// Stem returns the file name of rel without its final extension.
func Stem(rel string) string {
	base := filepath.Base(filepath.FromSlash(rel))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load reads every found file into a Command named by name.
// Entries for which name returns "" are skipped.
func Load(found []Found, name func(Found) string) ([]model.Command, error) {
	cmds := make([]model.Command, 0, len(found))
	for _, f := range found {
		n := name(f)
		if n == "" {
			continue
		}
		content, err := os.ReadFile(f.Path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", f.Path)
		}
		cmds = append(cmds, model.NewCommand(n, content, f.Path, f.Modified))
	}
	return cmds, nil
}
