// Package watcher implements the file watcher registry on top of fsnotify.
package watcher

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/vfs/internal/core/domain"
	"go.trai.ch/vfs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileWatcherRegistry = (*Registry)(nil)

// shouldSkipDirectories are directories that should not be watched.
var shouldSkipDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
}

// Registry watches registered hierarchies with fsnotify and delivers change
// events to a ports.ChangeHandler from a single background goroutine.
type Registry struct {
	watcher *fsnotify.Watcher
	handler ports.ChangeHandler

	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error

	mu          sync.Mutex
	hierarchies hierarchySet
	watched     map[string]struct{}

	stats counters
}

// newRegistry creates a registry and starts its notification goroutine.
func newRegistry(handler ports.ChangeHandler) (*Registry, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, mapWatchError(err, "")
	}
	r := &Registry{
		watcher: fsWatcher,
		handler: handler,
		watched: map[string]struct{}{},
	}
	go r.run()
	return r, nil
}

// RegisterWatchableHierarchy starts watching every directory under the given
// root, skipping VCS and dependency directories.
func (r *Registry) RegisterWatchableHierarchy(path string, _ domain.Hierarchy) error {
	if r.closed.Load() {
		return domain.ErrRegistryClosed
	}
	if !filepath.IsAbs(path) {
		return zerr.With(domain.ErrNotAbsolute, "path", path)
	}
	path = filepath.Clean(path)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.hierarchies.add(path)
	return r.watchRecursivelyLocked(path)
}

// ContentsChanged adjusts the watch set to the cached content: directories
// whose snapshots were added start being watched, directories whose
// snapshots were removed stop being watched once they are no longer cached
// and lie outside every registered hierarchy.
func (r *Registry) ContentsChanged(removed, added []domain.Snapshot, current domain.Hierarchy) error {
	if r.closed.Load() {
		return domain.ErrRegistryClosed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, snapshot := range removed {
		if !snapshot.IsDirectory() {
			continue
		}
		// Invalidation drops the ancestor directory snapshots of every
		// changed path; inside a registered hierarchy the directory stays
		// watched so changes to still-cached siblings keep arriving.
		if r.hierarchies.covers(snapshot.Path) {
			continue
		}
		if _, stillCached := current.Get(snapshot.Path); stillCached {
			continue
		}
		r.unwatchLocked(snapshot.Path)
	}
	for _, snapshot := range added {
		if !snapshot.IsDirectory() || !r.hierarchies.covers(snapshot.Path) {
			continue
		}
		if err := r.watchLocked(snapshot.Path); err != nil {
			return err
		}
	}
	return nil
}

// BuildFinished prunes the registry to at most maxHierarchies watched
// hierarchies, dropping the least recently registered ones and their watches.
func (r *Registry) BuildFinished(_ domain.Hierarchy, maxHierarchies int) error {
	if r.closed.Load() {
		return domain.ErrRegistryClosed
	}
	if maxHierarchies < 1 {
		return zerr.With(domain.ErrInvalidMaxHierarchies, "max", maxHierarchies)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, dropped := range r.hierarchies.prune(maxHierarchies) {
		prefix := dropped + string(filepath.Separator)
		for path := range r.watched {
			if path == dropped || strings.HasPrefix(path, prefix) {
				r.unwatchLocked(path)
			}
		}
	}
	return nil
}

// GetAndResetStatistics atomically drains the registry's counters.
func (r *Registry) GetAndResetStatistics() domain.FileWatchingStatistics {
	return r.stats.drain()
}

// Close releases the native watch resources. Idempotent; safe to call from
// the notification goroutine itself. The closed flag is checked before every
// dispatch, so no new callback starts after Close returns.
func (r *Registry) Close() error {
	r.closeOnce.Do(func() {
		r.closed.Store(true)
		r.closeErr = r.watcher.Close()
	})
	return r.closeErr
}

// run drains fsnotify's event and error channels until the watcher closes.
func (r *Registry) run() {
	for {
		select {
		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			r.dispatch(event)
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			r.receiveError(err)
		}
	}
}

func (r *Registry) dispatch(event fsnotify.Event) {
	if r.closed.Load() {
		return
	}
	r.stats.eventReceived()

	changeType, ok := convertOp(event.Op)
	if !ok {
		// An op we cannot classify means state under the path is unknown.
		r.stats.unknownEvent()
		changeType = ports.ChangeInvalidated
	}
	r.handler.HandleChange(changeType, event.Name)

	// Newly created directories under a watched root must be watched too;
	// the kernel only reports events for directories explicitly added.
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !shouldSkipDirectories[info.Name()] {
			r.mu.Lock()
			if r.hierarchies.covers(event.Name) {
				_ = r.watchRecursivelyLocked(event.Name)
			}
			r.mu.Unlock()
		}
	}
}

func (r *Registry) receiveError(err error) {
	if r.closed.Load() {
		return
	}
	if errors.Is(err, fsnotify.ErrEventOverflow) {
		r.stats.unknownEvent()
		r.handler.HandleLostState()
		return
	}
	r.stats.errorReceived(err)
}

// watchRecursivelyLocked adds watches for root and every directory below it.
func (r *Registry) watchRecursivelyLocked(root string) error {
	var watchErr error
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directories are skipped, not fatal.
			return nil //nolint:nilerr // intentional: keep walking past problematic entries
		}
		if !d.IsDir() {
			return nil
		}
		if shouldSkipDirectories[d.Name()] {
			return fs.SkipDir
		}
		if err := r.watchLocked(path); err != nil {
			watchErr = err
			return filepath.SkipAll
		}
		return nil
	})
	return watchErr
}

func (r *Registry) watchLocked(path string) error {
	if _, ok := r.watched[path]; ok {
		return nil
	}
	if err := r.watcher.Add(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return mapWatchError(err, path)
	}
	r.watched[path] = struct{}{}
	return nil
}

func (r *Registry) unwatchLocked(path string) {
	if _, ok := r.watched[path]; !ok {
		return
	}
	// The directory may already be gone; removal failures don't matter.
	_ = r.watcher.Remove(path)
	delete(r.watched, path)
}

// convertOp maps an fsnotify op onto a change type.
func convertOp(op fsnotify.Op) (ports.ChangeType, bool) {
	switch {
	case op.Has(fsnotify.Create):
		return ports.ChangeCreated, true
	case op.Has(fsnotify.Write) || op.Has(fsnotify.Chmod):
		return ports.ChangeModified, true
	case op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename):
		return ports.ChangeRemoved, true
	default:
		return 0, false
	}
}

// mapWatchError translates OS quota errors into the actionable sentinels the
// coordinator reports to the user.
func mapWatchError(err error, path string) error {
	switch {
	case errors.Is(err, syscall.ENOSPC):
		return zerr.With(domain.ErrWatchesLimit, "path", path)
	case errors.Is(err, syscall.EMFILE) || errors.Is(err, syscall.ENFILE):
		return domain.ErrWatchInstanceLimit
	default:
		return zerr.With(zerr.Wrap(err, domain.ErrWatchStartFailed.Error()), "path", path)
	}
}
