package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vfs/internal/core/ports"
)

// RecorderNodeID is the unique identifier for the build operation recorder Graft node.
const RecorderNodeID graft.ID = "adapter.recorder"

func init() {
	graft.Register(graft.Node[ports.BuildOperationRecorder]{
		ID:        RecorderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildOperationRecorder, error) {
			return NewOTelRecorder(), nil
		},
	})
}
