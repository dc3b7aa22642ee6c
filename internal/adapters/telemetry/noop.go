package telemetry

import "go.trai.ch/vfs/internal/core/ports"

var _ ports.BuildOperationRecorder = (*NoOpRecorder)(nil)

// NoOpRecorder is a no-op implementation of ports.BuildOperationRecorder.
// Absence of a recorder never affects correctness.
type NoOpRecorder struct{}

// NewNoOpRecorder creates a new NoOpRecorder.
func NewNoOpRecorder() *NoOpRecorder {
	return &NoOpRecorder{}
}

// BuildStarted does nothing.
func (r *NoOpRecorder) BuildStarted(ports.BuildStartedResult) {}

// BuildFinished does nothing.
func (r *NoOpRecorder) BuildFinished(ports.BuildFinishedResult) {}
