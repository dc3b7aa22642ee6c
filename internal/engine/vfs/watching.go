package vfs

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"

	"go.trai.ch/vfs/internal/core/domain"
	"go.trai.ch/vfs/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	watchingErrorDuringBuild   = "Unable to watch the file system for changes"
	watchingErrorAtEndOfBuild  = "The build was unable to watch the file system for changes"
	droppedStateBecauseOfLost  = "Dropped VFS state due to lost state"
	droppedStateBecauseOfError = "Dropped VFS state due to error while receiving file changes"
)

var _ ports.VirtualFileSystem = (*WatchingVirtualFileSystem)(nil)

// WatchingVirtualFileSystem coordinates the snapshot hierarchy and the watch
// registry across build boundaries. Watching failures never abort a build;
// the universal fallback for any ambiguity is an empty cache, which only
// costs re-scans, whereas a wrong cache entry would corrupt up-to-date checks.
type WatchingVirtualFileSystem struct {
	factory     ports.FileWatcherRegistryFactory
	root        *RootReference
	snapshotter ports.Snapshotter
	written     ports.WrittenLocations
	recorder    ports.BuildOperationRecorder
	log         ports.Logger

	// mu guards the registry slot, the buffered hierarchies and the
	// suppressed failure reason. The hierarchy itself is never guarded;
	// it lives behind the lock-free root reference.
	mu          sync.Mutex
	registry    ports.FileWatcherRegistry
	pending     []string
	notWatching error
}

// NewWatchingVirtualFileSystem creates the coordinator in the NOT_WATCHING
// state with an empty hierarchy.
func NewWatchingVirtualFileSystem(
	factory ports.FileWatcherRegistryFactory,
	snapshotter ports.Snapshotter,
	written ports.WrittenLocations,
	recorder ports.BuildOperationRecorder,
	log ports.Logger,
) *WatchingVirtualFileSystem {
	return &WatchingVirtualFileSystem{
		factory:     factory,
		root:        NewRootReference(domain.EmptyHierarchy()),
		snapshotter: snapshotter,
		written:     written,
		recorder:    recorder,
		log:         log,
	}
}

// Root returns the current hierarchy.
func (w *WatchingVirtualFileSystem) Root() domain.Hierarchy {
	return w.root.Get()
}

// Update atomically applies fn to the current hierarchy. While watching is
// active the collected diff is forwarded to the registry only after the new
// hierarchy has been installed, so the registry is never told about a change
// the cache has not committed. A failure to notify the registry is a watch
// failure, never a cache rollback.
func (w *WatchingVirtualFileSystem) Update(fn ports.UpdateFunc) {
	w.mu.Lock()
	registry := w.registry
	w.mu.Unlock()

	if registry == nil {
		w.root.Update(func(current domain.Hierarchy) domain.Hierarchy {
			return fn(current, domain.NoopDiffListener)
		})
		return
	}

	// A fresh collector per attempt: diffs gathered on a lost race are
	// discarded along with the losing hierarchy.
	var listener *domain.CollectingDiffListener
	installed := w.root.Update(func(current domain.Hierarchy) domain.Hierarchy {
		listener = domain.NewCollectingDiffListener()
		return fn(current, listener)
	})

	var notifyErr error
	listener.Publish(func(removed, added []domain.Snapshot) {
		notifyErr = registry.ContentsChanged(removed, added, installed)
	})
	if notifyErr != nil {
		w.mu.Lock()
		defer w.mu.Unlock()
		// The registry may have been replaced while we were notifying; a
		// failure against the old one must not tear down its successor.
		if w.registry == registry {
			w.logWatchingErrorLocked(notifyErr, watchingErrorDuringBuild)
			w.stopWatchingAndInvalidateHierarchyLocked()
		}
	}
}

// ReadLocation returns the cached snapshot for the path, probing disk and
// caching the result on a miss.
func (w *WatchingVirtualFileSystem) ReadLocation(path string) (domain.Snapshot, error) {
	path = filepath.Clean(path)
	if snapshot, ok := w.root.Get().Get(path); ok {
		return snapshot, nil
	}

	snapshot, err := w.snapshotter.Snapshot(path)
	if err != nil {
		return domain.Snapshot{}, zerr.With(err, "path", path)
	}
	w.Update(func(root domain.Hierarchy, listener domain.DiffListener) domain.Hierarchy {
		return root.Insert(snapshot, listener)
	})
	return snapshot, nil
}

// AfterBuildStarted decides the watch state for the starting build.
func (w *WatchingVirtualFileSystem) AfterBuildStarted(watchingEnabled, verboseLogging bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.notWatching = nil

	if !watchingEnabled {
		// Watching-disabled builds never trust carried-over state.
		w.stopWatchingAndInvalidateHierarchyLocked()
		w.recorder.BuildStarted(ports.BuildStartedResult{})
		return
	}

	result := ports.BuildStartedResult{WatchingEnabled: true}
	if w.registry == nil {
		w.startWatchingLocked()
		if w.registry == nil {
			w.root.Update(emptyHierarchy)
		}
		result.StartedWatching = w.registry != nil
	} else {
		statistics := w.registry.GetAndResetStatistics()
		if w.droppedStateBecauseOfReceiveErrors(statistics) {
			w.stopWatchingAndInvalidateHierarchyLocked()
			// Cold restart: the cache is gone but watching may resume.
			w.startWatchingLocked()
			result.StartedWatching = w.registry != nil
		}
		watching := domain.WatchingStatistics{
			FileWatchingStatistics: statistics,
			Retained:               w.root.Get().Count(),
		}
		result.Statistics = &watching
		if verboseLogging {
			w.logVerboseStatistics(watching, "since last build", "retained", "since last build")
		}
	}
	w.recorder.BuildStarted(result)
}

// RegisterWatchableHierarchy declares a root directory the current build
// wants watched. Registrations are buffered while no registry exists and
// applied when watching starts.
func (w *WatchingVirtualFileSystem) RegisterWatchableHierarchy(path string) {
	path = filepath.Clean(path)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.registry == nil {
		if !slices.Contains(w.pending, path) {
			w.pending = append(w.pending, path)
		}
		return
	}
	if err := w.registry.RegisterWatchableHierarchy(path, w.root.Get()); err != nil {
		w.logWatchingErrorLocked(err, watchingErrorDuringBuild)
		w.stopWatchingAndInvalidateHierarchyLocked()
	}
}

// BeforeBuildFinished snapshots statistics, prunes the watch set and decides
// whether the cache survives into the next build.
func (w *WatchingVirtualFileSystem) BeforeBuildFinished(watchingEnabled, verboseLogging bool, maxHierarchies int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	// Hierarchies must be re-declared next build.
	w.pending = nil

	if !watchingEnabled {
		w.stopWatchingAndInvalidateHierarchyLocked()
		w.recorder.BuildFinished(ports.BuildFinishedResult{})
		return
	}

	if w.notWatching != nil {
		// Log the suppressed failure again so it doesn't get lost.
		w.logWatchingErrorLocked(w.notWatching, watchingErrorAtEndOfBuild)
		w.notWatching = nil
	}

	result := ports.BuildFinishedResult{WatchingEnabled: true}
	if w.registry == nil {
		w.root.Update(emptyHierarchy)
		result.StoppedWatchingDuringBuild = true
	} else {
		statistics := w.registry.GetAndResetStatistics()
		if w.droppedStateBecauseOfReceiveErrors(statistics) {
			w.stopWatchingAndInvalidateHierarchyLocked()
		} else if err := w.registry.BuildFinished(w.root.Get(), maxHierarchies); err != nil {
			w.logWatchingErrorLocked(err, watchingErrorDuringBuild)
			w.stopWatchingAndInvalidateHierarchyLocked()
		}
		// Retained counts are taken after any drop above: a build that lost
		// its state reports the drained event counters alongside the emptied
		// cache, and the registry slot tells whether watching survived.
		watching := domain.WatchingStatistics{
			FileWatchingStatistics: statistics,
			Retained:               w.root.Get().Count(),
		}
		result.Statistics = &watching
		result.StoppedWatchingDuringBuild = w.registry == nil
		if verboseLogging {
			w.logVerboseStatistics(watching, "during the current build", "retains", "until next build")
		}
	}
	w.recorder.BuildFinished(result)
}

// Close stops watching and empties the hierarchy. Idempotent.
func (w *WatchingVirtualFileSystem) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopWatchingAndInvalidateHierarchyLocked()
	return nil
}

// startWatchingLocked creates a registry and registers the buffered
// hierarchies against the current hierarchy. On any failure the registry is
// released again and the failure recorded; the caller decides what happens
// to the cache.
func (w *WatchingVirtualFileSystem) startWatchingLocked() {
	handler := &changeHandler{vfs: w}
	registry, err := w.factory.NewRegistry(handler)
	if err != nil {
		w.logWatchingErrorLocked(err, watchingErrorDuringBuild)
		return
	}
	// The owner is set before the first watch exists, so every callback the
	// registry ever delivers can identify the registry it came from.
	handler.owner.Store(registry)
	w.registry = registry

	current := w.root.Get()
	for _, path := range w.pending {
		if err := registry.RegisterWatchableHierarchy(path, current); err != nil {
			w.logWatchingErrorLocked(err, watchingErrorDuringBuild)
			w.closeRegistryLocked()
			return
		}
	}
	w.pending = nil
}

// stopWatchingAndInvalidateHierarchy is the unlocked variant used from the
// change handler. The stop only happens while owner is still the installed
// registry: a callback from a replaced registry must not close its successor
// or drop the cache the successor guards. Reports whether state was dropped.
func (w *WatchingVirtualFileSystem) stopWatchingAndInvalidateHierarchy(owner ports.FileWatcherRegistry) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if owner == nil || w.registry != owner {
		return false
	}
	w.stopWatchingAndInvalidateHierarchyLocked()
	return true
}

func (w *WatchingVirtualFileSystem) stopWatchingAndInvalidateHierarchyLocked() {
	w.closeRegistryLocked()
	w.root.Update(emptyHierarchy)
}

func (w *WatchingVirtualFileSystem) closeRegistryLocked() {
	if w.registry == nil {
		return
	}
	toClose := w.registry
	w.registry = nil
	if err := toClose.Close(); err != nil {
		// Release failures are logged, never propagated; the hierarchy is
		// emptied regardless.
		w.log.Error(zerr.Wrap(err, "unable to close watch registry"))
	}
}

func (w *WatchingVirtualFileSystem) droppedStateBecauseOfReceiveErrors(statistics domain.FileWatchingStatistics) bool {
	if statistics.UnknownEventEncountered {
		w.log.Warn(droppedStateBecauseOfLost)
		return true
	}
	if statistics.ErrorWhileReceiving != nil {
		w.log.Warn(fmt.Sprintf("%s: %s", droppedStateBecauseOfError, statistics.ErrorWhileReceiving))
		return true
	}
	return false
}

func (w *WatchingVirtualFileSystem) logWatchingErrorLocked(err error, message string) {
	switch {
	case errors.Is(err, domain.ErrWatchInstanceLimit):
		w.log.Warn(fmt.Sprintf("%s. The limit on file watch instances is too low; raise fs.inotify.max_user_instances and retry.", message))
	case errors.Is(err, domain.ErrWatchesLimit):
		w.log.Warn(fmt.Sprintf("%s. The limit on file watches is too low; raise fs.inotify.max_user_watches and retry.", message))
	case errors.Is(err, domain.ErrWatchingNotSupported):
		w.log.Warn(fmt.Sprintf("%s. %s.", message, err))
	default:
		w.log.Warn(fmt.Sprintf("%s: %s", message, err))
	}
	w.notWatching = err
}

func (w *WatchingVirtualFileSystem) logVerboseStatistics(statistics domain.WatchingStatistics, eventsFor, verb, statisticsFor string) {
	w.log.Info(fmt.Sprintf("Received %d file system events %s", statistics.EventsReceived, eventsFor))
	w.log.Info(fmt.Sprintf(
		"Virtual file system %s information about %d files, %d directories and %d missing files %s",
		verb,
		statistics.Retained.RegularFiles,
		statistics.Retained.Directories,
		statistics.Retained.Missing,
		statisticsFor,
	))
}

func emptyHierarchy(current domain.Hierarchy) domain.Hierarchy {
	return current.Empty()
}

// changeHandler applies change events delivered by one watch registry to the
// hierarchy. It runs on the registry's notification goroutine and carries the
// registry it was created for, so late callbacks from a registry that has
// since been replaced cannot act on its successor.
type changeHandler struct {
	vfs   *WatchingVirtualFileSystem
	owner atomic.Value // ports.FileWatcherRegistry
}

var _ ports.ChangeHandler = (*changeHandler)(nil)

func (h *changeHandler) registry() ports.FileWatcherRegistry {
	owner, _ := h.owner.Load().(ports.FileWatcherRegistry)
	return owner
}

// HandleChange invalidates the changed path unless the current build wrote
// it itself. Any panic while applying an event escalates to a full stop:
// an empty cache is preferred over a possibly inconsistent one.
func (h *changeHandler) HandleChange(changeType ports.ChangeType, path string) {
	defer func() {
		if r := recover(); r != nil {
			h.vfs.log.Error(zerr.New(fmt.Sprintf("error while processing file events: %v", r)))
			h.vfs.stopWatchingAndInvalidateHierarchy(h.registry())
		}
	}()

	h.vfs.log.Debug(fmt.Sprintf("Handling VFS change %s %s", changeType, path))
	if h.vfs.written.WasLocationWritten(path) {
		return
	}
	h.vfs.Update(func(root domain.Hierarchy, listener domain.DiffListener) domain.Hierarchy {
		return root.Invalidate(path, listener)
	})
}

// HandleLostState drops all cached state after the OS reported lost events.
func (h *changeHandler) HandleLostState() {
	if h.vfs.stopWatchingAndInvalidateHierarchy(h.registry()) {
		h.vfs.log.Warn(droppedStateBecauseOfLost)
	}
}
