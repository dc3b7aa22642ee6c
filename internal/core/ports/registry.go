package ports

import "go.trai.ch/vfs/internal/core/domain"

// ChangeType classifies a file system change event.
type ChangeType uint8

const (
	// ChangeCreated indicates a file or directory was created.
	ChangeCreated ChangeType = iota
	// ChangeModified indicates a file's content or metadata changed.
	ChangeModified
	// ChangeRemoved indicates a file or directory was removed or renamed away.
	ChangeRemoved
	// ChangeInvalidated indicates the state of a subtree is unknown and
	// must be treated as changed.
	ChangeInvalidated
)

// String returns a human-readable name for the change type.
func (t ChangeType) String() string {
	switch t {
	case ChangeCreated:
		return "created"
	case ChangeModified:
		return "modified"
	case ChangeRemoved:
		return "removed"
	case ChangeInvalidated:
		return "invalidated"
	default:
		return "unknown"
	}
}

// ChangeHandler receives change notifications from a watch registry.
// Callbacks arrive on the registry's own notification goroutine at any time
// between registry creation and the return of Close.
type ChangeHandler interface {
	// HandleChange is called for every change observed under a watched
	// hierarchy.
	HandleChange(changeType ChangeType, path string)
	// HandleLostState is called when the OS mechanism dropped events and
	// cached state derived from past notifications can no longer be trusted.
	HandleLostState()
}

// FileWatcherRegistry owns the native OS watch resources for one watching
// session. It is exclusively owned by the watching coordinator.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type FileWatcherRegistry interface {
	// RegisterWatchableHierarchy starts watching a root directory.
	// The current hierarchy tells the registry which content is already
	// cached under the new root.
	RegisterWatchableHierarchy(path string, current domain.Hierarchy) error

	// ContentsChanged informs the registry which cached snapshots were
	// removed and added by a hierarchy update, so it can adjust its watch
	// set to cover exactly the cached content.
	ContentsChanged(removed, added []domain.Snapshot, current domain.Hierarchy) error

	// BuildFinished prunes the registry to at most maxHierarchies watched
	// hierarchies, retaining the most recently registered ones.
	BuildFinished(current domain.Hierarchy, maxHierarchies int) error

	// GetAndResetStatistics atomically drains the registry's counters.
	GetAndResetStatistics() domain.FileWatchingStatistics

	// Close releases all native watch resources. Idempotent; no new
	// callback starts after Close returns.
	Close() error
}

// FileWatcherRegistryFactory probes the platform and creates watch
// registries. Creation fails with domain.ErrWatchingNotSupported on
// platforms without change notifications, or with
// domain.ErrWatchInstanceLimit / domain.ErrWatchesLimit when OS quotas
// are exhausted.
type FileWatcherRegistryFactory interface {
	NewRegistry(handler ChangeHandler) (FileWatcherRegistry, error)
}
