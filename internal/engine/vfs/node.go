package vfs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vfs/internal/adapters/fs"
	"go.trai.ch/vfs/internal/adapters/logger"
	"go.trai.ch/vfs/internal/adapters/telemetry"
	"go.trai.ch/vfs/internal/adapters/watcher"
	"go.trai.ch/vfs/internal/core/ports"
)

const (
	// WrittenLocationsNodeID is the unique identifier for the written-locations tracker Graft node.
	WrittenLocationsNodeID graft.ID = "engine.written_locations"
	// VirtualFileSystemNodeID is the unique identifier for the virtual file system Graft node.
	VirtualFileSystemNodeID graft.ID = "engine.vfs"
)

func init() {
	// Written locations tracker Node
	graft.Register(graft.Node[*BuildWrittenLocations]{
		ID:        WrittenLocationsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*BuildWrittenLocations, error) {
			return NewBuildWrittenLocations(), nil
		},
	})

	// Virtual file system Node
	graft.Register(graft.Node[ports.VirtualFileSystem]{
		ID:        VirtualFileSystemNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			watcher.FactoryNodeID,
			fs.SnapshotterNodeID,
			WrittenLocationsNodeID,
			telemetry.RecorderNodeID,
			logger.NodeID,
		},
		Run: runVirtualFileSystemNode,
	})
}

func runVirtualFileSystemNode(ctx context.Context) (ports.VirtualFileSystem, error) {
	factory, err := graft.Dep[ports.FileWatcherRegistryFactory](ctx)
	if err != nil {
		return nil, err
	}
	snapshotter, err := graft.Dep[ports.Snapshotter](ctx)
	if err != nil {
		return nil, err
	}
	written, err := graft.Dep[*BuildWrittenLocations](ctx)
	if err != nil {
		return nil, err
	}
	recorder, err := graft.Dep[ports.BuildOperationRecorder](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return NewWatchingVirtualFileSystem(factory, snapshotter, written, recorder, log), nil
}
