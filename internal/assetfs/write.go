package assetfs

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thoreinstein/aisync/internal/errors"
	"github.com/thoreinstein/aisync/internal/model"
	"github.com/thoreinstein/aisync/pkg/fileutil"
)

const (
	// FilePerm is the mode for written assets.
	FilePerm os.FileMode = 0o644

	// ExecPerm is the mode for written scripts.
	ExecPerm os.FileMode = 0o755

	// DirPerm is the mode for created directories.
	DirPerm os.FileMode = 0o755
)

// ScriptPerm returns ExecPerm for content with a "#!" interpreter line and
// FilePerm otherwise.
func ScriptPerm(content []byte) os.FileMode {
	if len(content) >= 2 && content[0] == '#' && content[1] == '!' {
		return ExecPerm
	}
	return FilePerm
}

// WriteIfChanged writes content to path unless the existing file already
// holds identical bytes. It reports whether a write was needed. With dryRun
// set nothing is touched but the result is the same.
func WriteIfChanged(path string, content []byte, perm os.FileMode, dryRun bool) (bool, error) {
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if model.HashContent(existing) == model.HashContent(content) {
			return false, nil
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return false, errors.Wrapf(err, "reading %s", path)
	}

	if dryRun {
		return true, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return false, errors.Wrapf(err, "creating directory for %s", path)
	}
	if err := fileutil.AtomicWriteFile(path, content, perm); err != nil {
		return false, errors.Wrapf(err, "writing %s", path)
	}
	return true, nil
}

// Target is the resolved destination of one item.
type Target struct {
	Path    string
	Content []byte
	Perm    os.FileMode
}

// Destination resolves where and how an item is written. Returning an error
// marked with ErrUnsafeName skips the item with a warning.
type Destination func(item model.Command) (Target, error)

// WriteSet writes every item through dest with compare-before-write and
// returns the resulting report. The first I/O error aborts the set. When two
// items resolve to the same path the first one wins and later ones are
// skipped with a warning and not counted.
func WriteSet(logger *slog.Logger, items []model.Command, opts model.WriteOptions, dest Destination) (model.WriteReport, error) {
	var report model.WriteReport
	claimed := make(map[string]string, len(items))
	for _, item := range items {
		target, err := dest(item)
		if err != nil {
			if errors.Is(err, ErrUnsafeName) {
				logger.Warn("skipping item with unsafe name", "name", item.Name, "error", err)
				continue
			}
			return report, err
		}

		key := filepath.Clean(target.Path)
		if other, ok := claimed[key]; ok {
			logger.Warn("skipping item whose sanitized path collides", "name", item.Name, "other", other, "path", target.Path)
			continue
		}
		claimed[key] = item.Name

		perm := target.Perm
		if perm == 0 {
			perm = FilePerm
		}

		changed, err := WriteIfChanged(target.Path, target.Content, perm, opts.DryRun)
		if err != nil {
			return report, err
		}
		logger.Debug("asset compared", "name", item.Name, "path", target.Path, "changed", changed, "dry_run", opts.DryRun)
		report.Record(item.Name, changed)
	}
	return report, nil
}
