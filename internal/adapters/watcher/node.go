package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vfs/internal/core/ports"
)

// FactoryNodeID is the unique identifier for the watch registry factory Graft node.
const FactoryNodeID graft.ID = "adapter.watcher_factory"

func init() {
	graft.Register(graft.Node[ports.FileWatcherRegistryFactory]{
		ID:        FactoryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileWatcherRegistryFactory, error) {
			return NewFactory(), nil
		},
	})
}
