package backup

import (
	"io/fs"
	"time"

	"github.com/thoreinstein/aisync/internal/errors"
)

// ManifestVersion is the manifest format version.
const ManifestVersion = 1

// DefaultRetentionCount is the number of backups kept per platform.
const DefaultRetentionCount = 5

// Sentinel errors for backup operations.
var (
	// ErrNoBackupsFound indicates no backups exist for the platform.
	ErrNoBackupsFound = errors.New("no backups found")

	// ErrBackupCorrupted indicates a copy no longer matches its manifest hash.
	ErrBackupCorrupted = errors.New("backup corrupted")

	// ErrNothingToBackUp indicates none of the requested files exist yet.
	ErrNothingToBackUp = errors.New("nothing to back up")
)

// Manifest describes one backup. It is stored as manifest.json.
type Manifest struct {
	Version       int       `json:"version"`
	CreatedAt     time.Time `json:"created_at"`
	Platform      string    `json:"platform"`
	AISyncVersion string    `json:"aisync_version"`
	Files         []File    `json:"files"`

	// ID is the backup directory name. It is filled in on load.
	ID string `json:"-"`
}

// File is one backed up file.
type File struct {
	OriginalPath string      `json:"original_path"`
	RelPath      string      `json:"rel_path"`
	SHA256Hash   string      `json:"sha256_hash"`
	Mode         fs.FileMode `json:"mode"`
}
