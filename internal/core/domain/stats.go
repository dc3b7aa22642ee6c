package domain

// FileWatchingStatistics is one destructive read of the watch registry's
// counters, drained once per build boundary.
type FileWatchingStatistics struct {
	// UnknownEventEncountered is set when the OS mechanism reported dropped
	// or unrecognized events, meaning cached state can no longer be trusted.
	UnknownEventEncountered bool
	// EventsReceived is the number of change events delivered since the
	// last drain.
	EventsReceived int
	// ErrorWhileReceiving is the last error seen on the notification
	// source since the last drain, if any.
	ErrorWhileReceiving error
}

// SnapshotCounts tallies cached snapshots by kind.
type SnapshotCounts struct {
	RegularFiles int
	Directories  int
	Missing      int
}

// WatchingStatistics combines drained registry counters with the snapshot
// counts retained in the hierarchy at drain time. This is the payload
// attached to build lifecycle operations.
type WatchingStatistics struct {
	FileWatchingStatistics
	Retained SnapshotCounts
}
