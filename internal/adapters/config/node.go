package config

import (
	"context"

	"github.com/grindlemire/graft"
)

// LoaderNodeID is the unique identifier for the settings loader Graft node.
const LoaderNodeID graft.ID = "adapter.settings_loader"

func init() {
	graft.Register(graft.Node[*Loader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Loader, error) {
			return NewLoader(), nil
		},
	})
}
