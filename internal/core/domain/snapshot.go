// Package domain contains the core value types of the virtual file system:
// snapshots, the snapshot hierarchy and the statistics reported by watching.
package domain

import "time"

// Kind describes what a snapshot recorded about its path.
type Kind uint8

const (
	// KindRegularFile is a snapshot of a regular file's content and metadata.
	KindRegularFile Kind = iota
	// KindDirectory is a snapshot of a directory whose known children are
	// all represented in the hierarchy.
	KindDirectory
	// KindMissing records that the path did not exist when probed.
	KindMissing
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindRegularFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// Snapshot is the recorded file system metadata for a single absolute path.
// Snapshots are immutable values; a new probe of the same path produces a
// new snapshot rather than mutating an existing one.
type Snapshot struct {
	// Path is the absolute path the snapshot was taken of.
	Path string
	// Kind reports whether the path was a file, a directory or missing.
	Kind Kind
	// Fingerprint is the content fingerprint of a regular file.
	// It is zero for directories and missing paths.
	Fingerprint uint64
	// Size is the file size in bytes. Zero unless Kind is KindRegularFile.
	Size int64
	// ModTime is the modification time recorded when the snapshot was taken.
	ModTime time.Time
	// Children holds the direct children of a directory snapshot.
	// Only populated when Kind is KindDirectory.
	Children []Snapshot
}

// IsDirectory reports whether the snapshot represents a directory.
func (s Snapshot) IsDirectory() bool {
	return s.Kind == KindDirectory
}
