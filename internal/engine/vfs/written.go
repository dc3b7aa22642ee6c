package vfs

import (
	"path/filepath"
	"sync"

	"go.trai.ch/vfs/internal/core/ports"
)

var _ ports.WrittenLocations = (*BuildWrittenLocations)(nil)

// BuildWrittenLocations tracks the paths the current build wrote itself.
// The change handler consults it to suppress invalidation of self-inflicted
// changes: the hierarchy was already updated when the build wrote the file.
type BuildWrittenLocations struct {
	mu      sync.RWMutex
	written map[string]struct{}
}

// NewBuildWrittenLocations creates an empty tracker.
func NewBuildWrittenLocations() *BuildWrittenLocations {
	return &BuildWrittenLocations{written: map[string]struct{}{}}
}

// BuildStarted clears the tracked locations at the start of a build.
func (b *BuildWrittenLocations) BuildStarted() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.written = map[string]struct{}{}
}

// LocationWritten records that the build wrote the given absolute path.
func (b *BuildWrittenLocations) LocationWritten(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.written[filepath.Clean(path)] = struct{}{}
}

// WasLocationWritten reports whether the path, or any ancestor directory of
// it, was written by the current build.
func (b *BuildWrittenLocations) WasLocationWritten(path string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for p := filepath.Clean(path); p != ""; {
		if _, ok := b.written[p]; ok {
			return true
		}
		parent := filepath.Dir(p)
		if parent == p {
			return false
		}
		p = parent
	}
	return false
}
