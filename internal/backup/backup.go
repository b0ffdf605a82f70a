package backup

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/thoreinstein/aisync/internal/errors"
	"github.com/thoreinstein/aisync/pkg/fileutil"
)

const (
	idLayout     = "20060102T150405"
	manifestName = "manifest.json"
)

// Manager creates, lists, restores and prunes backups under one root.
type Manager struct {
	root      string
	retention int
	version   string
	now       func() time.Time
	logger    *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithRetentionCount sets how many backups Backup keeps per platform.
// Values below 1 are ignored.
func WithRetentionCount(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.retention = n
		}
	}
}

// WithVersion records the aisync version in new manifests.
func WithVersion(v string) Option {
	return func(m *Manager) {
		m.version = v
	}
}

// WithClock overrides the time source used for backup IDs.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager creates a Manager storing backups under root.
func NewManager(root string, opts ...Option) *Manager {
	m := &Manager{
		root:      root,
		retention: DefaultRetentionCount,
		version:   "dev",
		now:       time.Now,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Root returns the directory backups are stored under.
func (m *Manager) Root() string {
	return m.root
}

// Backup copies the existing files among paths into a new backup for
// platform, then prunes the platform down to the retention count. Missing
// files are skipped; when none exist it returns ErrNothingToBackUp.
func (m *Manager) Backup(platform string, paths []string) (*Manifest, error) {
	if platform == "" {
		return nil, errors.New("platform is required")
	}

	var existing []string
	for _, p := range paths {
		info, err := os.Stat(p)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			continue
		case err != nil:
			return nil, errors.Wrapf(err, "stat %s", p)
		case info.IsDir():
			return nil, errors.Newf("%s is a directory", p)
		}
		existing = append(existing, p)
	}
	if len(existing) == 0 {
		return nil, ErrNothingToBackUp
	}

	created := m.now().UTC()
	id, dir, err := m.reserve(platform, created)
	if err != nil {
		return nil, err
	}

	manifest := &Manifest{
		Version:       ManifestVersion,
		CreatedAt:     created,
		Platform:      platform,
		AISyncVersion: m.version,
		ID:            id,
	}
	for i, src := range existing {
		rel := fmt.Sprintf("%02d-%s", i, filepath.Base(src))
		hash, mode, err := copyFile(src, filepath.Join(dir, rel))
		if err != nil {
			_ = os.RemoveAll(dir)
			return nil, errors.Wrapf(err, "backing up %s", src)
		}
		manifest.Files = append(manifest.Files, File{
			OriginalPath: src,
			RelPath:      rel,
			SHA256Hash:   hash,
			Mode:         mode,
		})
	}

	if err := fileutil.AtomicWriteJSON(filepath.Join(dir, manifestName), manifest); err != nil {
		_ = os.RemoveAll(dir)
		return nil, errors.Wrap(err, "writing manifest")
	}
	m.logger.Debug("backup created", "platform", platform, "id", id, "files", len(manifest.Files))

	if err := m.Prune(platform, m.retention); err != nil {
		return manifest, err
	}
	return manifest, nil
}

// reserve creates a fresh backup directory for the given time.
func (m *Manager) reserve(platform string, at time.Time) (id, dir string, err error) {
	parent := m.platformDir(platform)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return "", "", errors.Wrap(err, "creating backup directory")
	}

	base := at.Format(idLayout)
	for n := 0; ; n++ {
		id = base
		if n > 0 {
			id = fmt.Sprintf("%s-%d", base, n)
		}
		dir = filepath.Join(parent, id)
		err := os.Mkdir(dir, 0o755)
		if err == nil {
			return id, dir, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", "", errors.Wrap(err, "creating backup directory")
		}
	}
}

// Restore writes every file of a backup back to its original location
// after verifying its hash.
func (m *Manager) Restore(platform, id string) (*Manifest, error) {
	manifest, err := m.Get(platform, id)
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(m.platformDir(platform), id)

	// verify everything first so a damaged backup restores nothing
	for _, f := range manifest.Files {
		hash, err := hashFile(filepath.Join(dir, f.RelPath))
		if err != nil {
			return nil, errors.Wrapf(err, "reading backup file %s", f.RelPath)
		}
		if hash != f.SHA256Hash {
			return nil, errors.Wrapf(ErrBackupCorrupted, "file %s hash mismatch", f.RelPath)
		}
	}

	for _, f := range manifest.Files {
		data, err := os.ReadFile(filepath.Join(dir, f.RelPath))
		if err != nil {
			return nil, errors.Wrapf(err, "reading backup file %s", f.RelPath)
		}
		if err := os.MkdirAll(filepath.Dir(f.OriginalPath), 0o755); err != nil {
			return nil, errors.Wrapf(err, "creating directory for %s", f.OriginalPath)
		}
		if err := fileutil.AtomicWriteFile(f.OriginalPath, data, f.Mode.Perm()); err != nil {
			return nil, errors.Wrapf(err, "restoring %s", f.OriginalPath)
		}
	}
	return manifest, nil
}

// Latest returns the most recent backup of platform.
func (m *Manager) Latest(platform string) (*Manifest, error) {
	manifests, err := m.List(platform)
	if err != nil {
		return nil, err
	}
	return &manifests[0], nil
}

// List returns the backups of platform, newest first. Directories without
// a readable manifest are ignored.
func (m *Manager) List(platform string) ([]Manifest, error) {
	if platform == "" {
		return nil, errors.New("platform is required")
	}

	entries, err := os.ReadDir(m.platformDir(platform))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoBackupsFound
		}
		return nil, errors.Wrap(err, "reading backup directory")
	}

	manifests := make([]Manifest, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		manifest, err := m.Get(platform, entry.Name())
		if err != nil {
			m.logger.Debug("skipping backup", "id", entry.Name(), "error", err)
			continue
		}
		manifests = append(manifests, *manifest)
	}
	if len(manifests) == 0 {
		return nil, ErrNoBackupsFound
	}

	slices.SortFunc(manifests, func(a, b Manifest) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return compareIDs(b.ID, a.ID)
	})
	return manifests, nil
}

// compareIDs orders IDs from the same second by their numeric suffix.
func compareIDs(a, b string) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return strings.Compare(a, b)
}

// Prune removes all but the newest keep backups of platform.
func (m *Manager) Prune(platform string, keep int) error {
	if keep < 0 {
		return errors.New("keep must be non-negative")
	}

	manifests, err := m.List(platform)
	if err != nil {
		if errors.Is(err, ErrNoBackupsFound) {
			return nil
		}
		return err
	}

	for _, old := range manifests[min(keep, len(manifests)):] {
		if err := os.RemoveAll(filepath.Join(m.platformDir(platform), old.ID)); err != nil {
			return errors.Wrapf(err, "removing backup %s", old.ID)
		}
		m.logger.Debug("backup pruned", "platform", platform, "id", old.ID)
	}
	return nil
}

// Get loads the manifest of one backup.
func (m *Manager) Get(platform, id string) (*Manifest, error) {
	if platform == "" {
		return nil, errors.New("platform is required")
	}
	if id == "" || id != filepath.Base(id) {
		return nil, errors.Newf("invalid backup ID %q", id)
	}

	data, err := os.ReadFile(filepath.Join(m.platformDir(platform), id, manifestName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrNoBackupsFound, "backup %s not found", id)
		}
		return nil, errors.Wrap(err, "reading manifest")
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Wrap(err, "parsing manifest")
	}
	manifest.ID = id
	return &manifest, nil
}

func (m *Manager) platformDir(platform string) string {
	return filepath.Join(m.root, platform)
}

// hashFile returns the hex SHA-256 of a file.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "opening file")
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Wrap(err, "reading file")
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// copyFile copies src to dst, returning the SHA-256 and mode of src.
func copyFile(src, dst string) (hash string, mode fs.FileMode, err error) {
	in, err := os.Open(src)
	if err != nil {
		return "", 0, errors.Wrap(err, "opening source file")
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return "", 0, errors.Wrap(err, "stat source file")
	}
	mode = info.Mode().Perm()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return "", 0, errors.Wrap(err, "creating destination file")
	}

	h := sha256.New()
	if _, err := io.Copy(io.MultiWriter(out, h), in); err != nil {
		out.Close()
		return "", 0, errors.Wrap(err, "copying file")
	}
	if err := out.Close(); err != nil {
		return "", 0, errors.Wrap(err, "closing destination file")
	}
	return hex.EncodeToString(h.Sum(nil)), mode, nil
}
