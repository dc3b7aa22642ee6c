// Package telemetry records build lifecycle operations via OpenTelemetry.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/vfs/internal/core/domain"
	"go.trai.ch/vfs/internal/core/ports"
)

// instrumentationName identifies this module's tracer.
const instrumentationName = "go.trai.ch/vfs"

var _ ports.BuildOperationRecorder = (*OTelRecorder)(nil)

// OTelRecorder emits one span per build lifecycle operation, carrying the
// watching statistics as attributes.
type OTelRecorder struct {
	tracer trace.Tracer
}

// NewOTelRecorder creates a recorder using the globally registered tracer
// provider.
func NewOTelRecorder() *OTelRecorder {
	return &OTelRecorder{tracer: otel.Tracer(instrumentationName)}
}

// BuildStarted records the build-started operation.
func (r *OTelRecorder) BuildStarted(result ports.BuildStartedResult) {
	attrs := []attribute.KeyValue{
		attribute.Bool("vfs.watching_enabled", result.WatchingEnabled),
		attribute.Bool("vfs.started_watching", result.StartedWatching),
	}
	attrs = appendStatistics(attrs, result.Statistics)
	r.emit("vfs.build_started", attrs)
}

// BuildFinished records the build-finished operation.
func (r *OTelRecorder) BuildFinished(result ports.BuildFinishedResult) {
	attrs := []attribute.KeyValue{
		attribute.Bool("vfs.watching_enabled", result.WatchingEnabled),
		attribute.Bool("vfs.stopped_watching_during_build", result.StoppedWatchingDuringBuild),
	}
	attrs = appendStatistics(attrs, result.Statistics)
	r.emit("vfs.build_finished", attrs)
}

func (r *OTelRecorder) emit(name string, attrs []attribute.KeyValue) {
	_, span := r.tracer.Start(context.Background(), name, trace.WithAttributes(attrs...))
	span.End()
}

func appendStatistics(attrs []attribute.KeyValue, statistics *domain.WatchingStatistics) []attribute.KeyValue {
	if statistics == nil {
		return attrs
	}
	attrs = append(attrs,
		attribute.Int("vfs.events_received", statistics.EventsReceived),
		attribute.Int("vfs.retained_files", statistics.Retained.RegularFiles),
		attribute.Int("vfs.retained_directories", statistics.Retained.Directories),
		attribute.Int("vfs.retained_missing", statistics.Retained.Missing),
		attribute.Bool("vfs.lost_state", statistics.UnknownEventEncountered),
		attribute.Bool("vfs.receive_error", statistics.ErrorWhileReceiving != nil),
	)
	return attrs
}
