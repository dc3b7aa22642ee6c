package ports

import "go.trai.ch/vfs/internal/core/domain"

// UpdateFunc transforms the current hierarchy into a new one, reporting
// every removed and added snapshot to the listener. Updates are retried
// when a concurrent update wins the race, so the function must be pure:
// no side effects besides computing the result and reporting the diff.
type UpdateFunc func(root domain.Hierarchy, listener domain.DiffListener) domain.Hierarchy

// VirtualFileSystem is the build-lifecycle-aware cache of file system state.
// Reads are lock-free; writes go through the atomic Update protocol.
//
//go:generate mockgen -source=vfs.go -destination=mocks/mock_vfs.go -package=mocks
type VirtualFileSystem interface {
	// Root returns the current hierarchy.
	Root() domain.Hierarchy

	// Update atomically applies fn to the current hierarchy and installs
	// the result. While watching is active the collected diff is forwarded
	// to the watch registry after a successful install.
	Update(fn UpdateFunc)

	// ReadLocation returns the cached snapshot for the path, probing disk
	// and caching the result on a miss.
	ReadLocation(path string) (domain.Snapshot, error)

	// AfterBuildStarted is invoked exactly once at the start of every
	// build, before any task executes.
	AfterBuildStarted(watchingEnabled, verboseLogging bool)

	// RegisterWatchableHierarchy declares a root directory the current
	// build wants watched. Idempotent per path; hierarchies must be
	// re-declared every build.
	RegisterWatchableHierarchy(path string)

	// BeforeBuildFinished is invoked exactly once at the end of every
	// build, after AfterBuildStarted and never re-entrant with it.
	BeforeBuildFinished(watchingEnabled, verboseLogging bool, maxHierarchies int)

	// Close releases all watch resources and empties the hierarchy.
	// Idempotent; intended for process shutdown.
	Close() error
}
