package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/vfs/internal/core/domain"
)

func TestCollectingDiffListener(t *testing.T) {
	t.Run("Publishes Collected Diff", func(t *testing.T) {
		listener := domain.NewCollectingDiffListener()
		listener.NodeRemoved(file("/a.txt"))
		listener.NodeAdded(file("/b.txt"))
		listener.NodeAdded(file("/c.txt"))

		var removed, added []domain.Snapshot
		listener.Publish(func(r, a []domain.Snapshot) { removed, added = r, a })

		assert.Len(t, removed, 1)
		assert.Len(t, added, 2)
	})

	t.Run("Skips Empty Diff", func(t *testing.T) {
		listener := domain.NewCollectingDiffListener()

		published := false
		listener.Publish(func(_, _ []domain.Snapshot) { published = true })

		assert.False(t, published)
	})
}
