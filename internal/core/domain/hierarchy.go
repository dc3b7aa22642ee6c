package domain

import (
	"path/filepath"
	"strings"
)

// Hierarchy is an immutable, path-indexed collection of snapshots.
// All operations return a new hierarchy and leave the receiver untouched,
// so readers can hold a hierarchy value without any locking.
//
// Invariants:
//   - at most one snapshot per absolute path;
//   - a directory snapshot implies its known children are present;
//   - invalidating a path removes the path, every descendant, and every
//     ancestor directory snapshot whose completeness depended on it.
type Hierarchy struct {
	entries map[string]Snapshot
}

// EmptyHierarchy returns a hierarchy with no cached snapshots.
func EmptyHierarchy() Hierarchy {
	return Hierarchy{entries: map[string]Snapshot{}}
}

// Get returns the snapshot cached for the given absolute path.
func (h Hierarchy) Get(path string) (Snapshot, bool) {
	s, ok := h.entries[filepath.Clean(path)]
	return s, ok
}

// Size returns the number of cached snapshots.
func (h Hierarchy) Size() int {
	return len(h.entries)
}

// Insert returns a hierarchy with the given snapshot (and, for directories,
// its children) cached. Any previously cached snapshots below the snapshot's
// path are replaced; the listener receives every snapshot removed and added.
func (h Hierarchy) Insert(snapshot Snapshot, listener DiffListener) Hierarchy {
	path := filepath.Clean(snapshot.Path)

	removed := h.subtree(path)
	entries := make(map[string]Snapshot, len(h.entries))
	for p, s := range h.entries {
		if _, gone := removed[p]; gone {
			listener.NodeRemoved(s)
			continue
		}
		entries[p] = s
	}

	flatten(snapshot, func(s Snapshot) {
		entries[filepath.Clean(s.Path)] = s
		listener.NodeAdded(s)
	})

	return Hierarchy{entries: entries}
}

// Invalidate returns a hierarchy without the given path, without any cached
// descendant of it, and without any ancestor directory snapshot, since those
// no longer reflect a complete view of disk. Invalidating a path with no
// cached state is a no-op and returns the receiver unchanged.
func (h Hierarchy) Invalidate(path string, listener DiffListener) Hierarchy {
	path = filepath.Clean(path)

	stale := h.subtree(path)
	for ancestor := parentPath(path); ancestor != ""; ancestor = parentPath(ancestor) {
		if s, ok := h.entries[ancestor]; ok && s.IsDirectory() {
			stale[ancestor] = struct{}{}
		}
	}
	if len(stale) == 0 {
		return h
	}

	entries := make(map[string]Snapshot, len(h.entries)-len(stale))
	for p, s := range h.entries {
		if _, gone := stale[p]; gone {
			listener.NodeRemoved(s)
			continue
		}
		entries[p] = s
	}
	return Hierarchy{entries: entries}
}

// Empty drops all cached snapshots.
func (h Hierarchy) Empty() Hierarchy {
	return EmptyHierarchy()
}

// Count tallies the cached snapshots by kind.
func (h Hierarchy) Count() SnapshotCounts {
	var counts SnapshotCounts
	for _, s := range h.entries {
		switch s.Kind {
		case KindRegularFile:
			counts.RegularFiles++
		case KindDirectory:
			counts.Directories++
		case KindMissing:
			counts.Missing++
		}
	}
	return counts
}

// Walk visits every cached snapshot until fn returns false.
// Iteration order is unspecified.
func (h Hierarchy) Walk(fn func(Snapshot) bool) {
	for _, s := range h.entries {
		if !fn(s) {
			return
		}
	}
}

// subtree returns the set of cached paths at or below the given path.
func (h Hierarchy) subtree(path string) map[string]struct{} {
	found := map[string]struct{}{}
	if _, ok := h.entries[path]; ok {
		found[path] = struct{}{}
	}
	prefix := path + string(filepath.Separator)
	for p := range h.entries {
		if strings.HasPrefix(p, prefix) {
			found[p] = struct{}{}
		}
	}
	return found
}

// flatten visits the snapshot and every transitive child.
func flatten(snapshot Snapshot, visit func(Snapshot)) {
	visit(snapshot)
	for _, child := range snapshot.Children {
		flatten(child, visit)
	}
}

// parentPath returns the parent of an absolute path, or "" at the root.
func parentPath(path string) string {
	parent := filepath.Dir(path)
	if parent == path {
		return ""
	}
	return parent
}
