package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vfs/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/vfs/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/vfs/internal/core/ports"
	"go.trai.ch/vfs/internal/engine/vfs"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			vfs.VirtualFileSystemNodeID,
			vfs.WrittenLocationsNodeID,
			config.LoaderNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	filesystem, err := graft.Dep[ports.VirtualFileSystem](ctx)
	if err != nil {
		return nil, err
	}
	written, err := graft.Dep[*vfs.BuildWrittenLocations](ctx)
	if err != nil {
		return nil, err
	}
	loader, err := graft.Dep[*config.Loader](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(filesystem, written, loader, log), nil
}
