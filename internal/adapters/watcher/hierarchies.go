package watcher

import (
	"path/filepath"
	"slices"
	"strings"
)

// hierarchySet is the ordered set of watchable hierarchy roots, least
// recently registered first. Not safe for concurrent use; callers hold the
// registry lock.
type hierarchySet struct {
	roots []string
}

// add registers a root, moving an already registered one to the most-recent
// position so pruning retains the hierarchies the build still cares about.
func (s *hierarchySet) add(root string) {
	if i := slices.Index(s.roots, root); i >= 0 {
		s.roots = append(slices.Delete(s.roots, i, i+1), root)
		return
	}
	s.roots = append(s.roots, root)
}

// covers reports whether the path lies within any registered hierarchy.
func (s *hierarchySet) covers(path string) bool {
	for _, root := range s.roots {
		if path == root || strings.HasPrefix(path, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// prune drops all but the max most recently registered roots and returns
// the dropped ones.
func (s *hierarchySet) prune(max int) []string {
	if len(s.roots) <= max {
		return nil
	}
	dropped := s.roots[:len(s.roots)-max]
	s.roots = slices.Clone(s.roots[len(s.roots)-max:])
	return dropped
}
