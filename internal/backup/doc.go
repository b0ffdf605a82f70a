// Package backup snapshots platform settings files before a sync rewrites
// them, and restores them on request.
//
// Backups live under <config dir>/backups/<platform>/<id>/ where id is a
// UTC timestamp such as 20260123T100712, suffixed with -1, -2 and so on when
// two backups land in the same second. Each backup holds a copy of every
// file plus a manifest.json:
//
//	{
//	  "version": 1,
//	  "created_at": "2026-01-23T10:07:12Z",
//	  "platform": "claude",
//	  "aisync_version": "dev",
//	  "files": [
//	    {"original_path": "/home/u/.claude/settings.json", "rel_path": "00-settings.json",
//	     "sha256_hash": "…", "mode": 420}
//	  ]
//	}
//
// Restore verifies each copy against its recorded hash before writing it
// back, so a damaged backup is rejected with [ErrBackupCorrupted] instead of
// clobbering live settings.
package backup
