package ports

import "go.trai.ch/vfs/internal/core/domain"

// BuildStartedResult is the observability payload of the build-started
// lifecycle operation.
type BuildStartedResult struct {
	// WatchingEnabled reports whether file system watching was requested
	// for this build.
	WatchingEnabled bool
	// StartedWatching reports whether watching was freshly started for
	// this build (as opposed to carried over from the previous one).
	StartedWatching bool
	// Statistics carries counters since the last build. Nil on a cold start.
	Statistics *domain.WatchingStatistics
}

// BuildFinishedResult is the observability payload of the build-finished
// lifecycle operation.
type BuildFinishedResult struct {
	// WatchingEnabled reports whether file system watching was requested
	// for this build.
	WatchingEnabled bool
	// StoppedWatchingDuringBuild reports whether watching had to be
	// stopped while the build was running.
	StoppedWatchingDuringBuild bool
	// Statistics carries counters gathered during the build. Nil when
	// watching was not active.
	Statistics *domain.WatchingStatistics
}

// BuildOperationRecorder records build lifecycle operations for
// observability. Implementations must not affect correctness; a no-op
// recorder is a valid one.
//
//go:generate mockgen -source=recorder.go -destination=mocks/mock_recorder.go -package=mocks
type BuildOperationRecorder interface {
	BuildStarted(result BuildStartedResult)
	BuildFinished(result BuildFinishedResult)
}
