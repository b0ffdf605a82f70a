// Package assetfs holds the filesystem mechanics shared by every platform
// adapter: depth-bounded discovery, duplicate resolution, name
// sanitization, compare-before-write and read-modify-write settings
// documents.
//
// Adapters describe what differs between ecosystems (directories, file
// suffixes, which [DuplicatePolicy] and [NamePolicy] apply) and delegate the
// rest here, so that precedence and path safety behave the same everywhere.
package assetfs
