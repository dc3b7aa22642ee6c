package watcher_test

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vfs/internal/adapters/watcher"
	"go.trai.ch/vfs/internal/core/domain"
	"go.trai.ch/vfs/internal/core/ports"
)

// recordingHandler collects change notifications from the registry goroutine.
type recordingHandler struct {
	mu      sync.Mutex
	changes []string
	lost    bool
}

func (h *recordingHandler) HandleChange(_ ports.ChangeType, path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.changes = append(h.changes, path)
}

func (h *recordingHandler) HandleLostState() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lost = true
}

func (h *recordingHandler) sawChangeFor(path string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, p := range h.changes {
		if p == path {
			return true
		}
	}
	return false
}

func newRegistry(t *testing.T) (ports.FileWatcherRegistry, *recordingHandler) {
	t.Helper()
	handler := &recordingHandler{}
	registry, err := watcher.NewFactory().NewRegistry(handler)
	require.NoError(t, err)
	t.Cleanup(func() { _ = registry.Close() })
	return registry, handler
}

func TestFactory_NewRegistry(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" && runtime.GOOS != "windows" {
		t.Skip("no native watch support on this platform")
	}

	registry, _ := newRegistry(t)
	assert.NotNil(t, registry)
}

func TestRegistry_RegisterWatchableHierarchy(t *testing.T) {
	t.Run("Rejects Relative Paths", func(t *testing.T) {
		registry, _ := newRegistry(t)

		err := registry.RegisterWatchableHierarchy("relative/path", domain.EmptyHierarchy())

		assert.ErrorIs(t, err, domain.ErrNotAbsolute)
	})

	t.Run("Delivers Events For Watched Files", func(t *testing.T) {
		registry, handler := newRegistry(t)
		root := t.TempDir()

		require.NoError(t, registry.RegisterWatchableHierarchy(root, domain.EmptyHierarchy()))

		file := filepath.Join(root, "watched.txt")
		require.NoError(t, os.WriteFile(file, []byte("content"), 0o600))

		assert.Eventually(t, func() bool { return handler.sawChangeFor(file) },
			5*time.Second, 10*time.Millisecond)

		statistics := registry.GetAndResetStatistics()
		assert.Positive(t, statistics.EventsReceived)
		assert.False(t, statistics.UnknownEventEncountered)
	})

	t.Run("Watches Directories Created After Registration", func(t *testing.T) {
		registry, handler := newRegistry(t)
		root := t.TempDir()

		require.NoError(t, registry.RegisterWatchableHierarchy(root, domain.EmptyHierarchy()))

		subdir := filepath.Join(root, "created-later")
		require.NoError(t, os.Mkdir(subdir, 0o700))
		// Give the registry a moment to pick up the new directory.
		require.Eventually(t, func() bool { return handler.sawChangeFor(subdir) },
			5*time.Second, 10*time.Millisecond)

		file := filepath.Join(subdir, "nested.txt")
		require.NoError(t, os.WriteFile(file, []byte("content"), 0o600))

		assert.Eventually(t, func() bool { return handler.sawChangeFor(file) },
			5*time.Second, 10*time.Millisecond)
	})

	t.Run("Closed Registry Rejects Registration", func(t *testing.T) {
		registry, _ := newRegistry(t)
		require.NoError(t, registry.Close())

		err := registry.RegisterWatchableHierarchy(t.TempDir(), domain.EmptyHierarchy())

		assert.ErrorIs(t, err, domain.ErrRegistryClosed)
	})
}

func TestRegistry_ContentsChanged(t *testing.T) {
	t.Run("Keeps Watching Inside Registered Hierarchies", func(t *testing.T) {
		registry, handler := newRegistry(t)
		root := t.TempDir()

		require.NoError(t, registry.RegisterWatchableHierarchy(root, domain.EmptyHierarchy()))

		// Invalidating any path drops the ancestor directory snapshots, so
		// the root's own directory snapshot is routinely removed while
		// sibling files stay cached. The root must stay watched regardless.
		sibling := filepath.Join(root, "sibling.txt")
		current := domain.EmptyHierarchy().Insert(
			domain.Snapshot{Path: sibling, Kind: domain.KindRegularFile},
			domain.NoopDiffListener,
		)
		removed := []domain.Snapshot{{Path: root, Kind: domain.KindDirectory}}
		require.NoError(t, registry.ContentsChanged(removed, nil, current))

		require.NoError(t, os.WriteFile(sibling, []byte("content"), 0o600))

		assert.Eventually(t, func() bool { return handler.sawChangeFor(sibling) },
			5*time.Second, 10*time.Millisecond)
	})

	t.Run("Closed Registry Rejects Notification", func(t *testing.T) {
		registry, _ := newRegistry(t)
		require.NoError(t, registry.Close())

		err := registry.ContentsChanged(nil, nil, domain.EmptyHierarchy())

		assert.ErrorIs(t, err, domain.ErrRegistryClosed)
	})
}

func TestRegistry_BuildFinished(t *testing.T) {
	t.Run("Rejects Invalid Limit", func(t *testing.T) {
		registry, _ := newRegistry(t)

		err := registry.BuildFinished(domain.EmptyHierarchy(), 0)

		assert.ErrorIs(t, err, domain.ErrInvalidMaxHierarchies)
	})

	t.Run("Drops Events For Pruned Hierarchies", func(t *testing.T) {
		registry, handler := newRegistry(t)
		oldest := t.TempDir()
		newest := t.TempDir()

		require.NoError(t, registry.RegisterWatchableHierarchy(oldest, domain.EmptyHierarchy()))
		require.NoError(t, registry.RegisterWatchableHierarchy(newest, domain.EmptyHierarchy()))

		require.NoError(t, registry.BuildFinished(domain.EmptyHierarchy(), 1))

		kept := filepath.Join(newest, "kept.txt")
		require.NoError(t, os.WriteFile(kept, []byte("content"), 0o600))
		require.Eventually(t, func() bool { return handler.sawChangeFor(kept) },
			5*time.Second, 10*time.Millisecond)

		pruned := filepath.Join(oldest, "pruned.txt")
		require.NoError(t, os.WriteFile(pruned, []byte("content"), 0o600))
		time.Sleep(100 * time.Millisecond)

		assert.False(t, handler.sawChangeFor(pruned))
	})
}

func TestRegistry_Close(t *testing.T) {
	registry, _ := newRegistry(t)

	require.NoError(t, registry.Close())
	require.NoError(t, registry.Close())
}
