package ports

import "go.trai.ch/vfs/internal/core/domain"

// Snapshotter produces snapshots by probing disk. Implementations must be
// safe for concurrent use; the hierarchy is populated from many build
// threads at once.
//
//go:generate mockgen -source=snapshotter.go -destination=mocks/mock_snapshotter.go -package=mocks
type Snapshotter interface {
	// Snapshot probes the given absolute path. A missing path is not an
	// error; it yields a snapshot of kind KindMissing.
	Snapshot(path string) (domain.Snapshot, error)
}
