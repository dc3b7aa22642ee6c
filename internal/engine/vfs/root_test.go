package vfs_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/vfs/internal/core/domain"
	"go.trai.ch/vfs/internal/engine/vfs"
)

func TestRootReference_Get(t *testing.T) {
	initial := domain.EmptyHierarchy().Insert(
		domain.Snapshot{Path: "/a.txt", Kind: domain.KindRegularFile},
		domain.NoopDiffListener,
	)

	ref := vfs.NewRootReference(initial)

	assert.Equal(t, 1, ref.Get().Size())
}

func TestRootReference_Update(t *testing.T) {
	t.Run("Returns Installed Hierarchy", func(t *testing.T) {
		ref := vfs.NewRootReference(domain.EmptyHierarchy())

		installed := ref.Update(func(current domain.Hierarchy) domain.Hierarchy {
			return current.Insert(
				domain.Snapshot{Path: "/a.txt", Kind: domain.KindRegularFile},
				domain.NoopDiffListener,
			)
		})

		assert.Equal(t, 1, installed.Size())
		assert.Equal(t, 1, ref.Get().Size())
	})

	t.Run("Concurrent Updates All Land", func(t *testing.T) {
		ref := vfs.NewRootReference(domain.EmptyHierarchy())

		const writers = 64
		var wg sync.WaitGroup
		for i := range writers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				path := fmt.Sprintf("/file-%d.txt", i)
				ref.Update(func(current domain.Hierarchy) domain.Hierarchy {
					return current.Insert(
						domain.Snapshot{Path: path, Kind: domain.KindRegularFile},
						domain.NoopDiffListener,
					)
				})
			}()
		}
		wg.Wait()

		assert.Equal(t, writers, ref.Get().Size(), "no update may be lost to a race")
	})
}
