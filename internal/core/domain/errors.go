package domain

import "go.trai.ch/zerr"

var (
	// ErrWatchingNotSupported is returned when the platform cannot provide
	// file system change notifications at all.
	ErrWatchingNotSupported = zerr.New("file system watching is not supported on this platform")

	// ErrWatchInstanceLimit is returned when the OS limit on watch
	// instances is too low to create another notification source.
	ErrWatchInstanceLimit = zerr.New("the limit on file watch instances is too low")

	// ErrWatchesLimit is returned when the OS limit on individual watches
	// is too low to watch another directory.
	ErrWatchesLimit = zerr.New("the limit on file watches is too low")

	// ErrRegistryClosed is returned when an operation is attempted on a
	// watch registry that has already been closed.
	ErrRegistryClosed = zerr.New("watch registry is closed")

	// ErrWatchStartFailed is returned when a directory cannot be added to
	// the native watch set.
	ErrWatchStartFailed = zerr.New("failed to start watching directory")

	// ErrNotAbsolute is returned when a watchable hierarchy is registered
	// with a relative path.
	ErrNotAbsolute = zerr.New("watchable hierarchy path must be absolute")

	// ErrPathStatFailed is returned when stating a path fails for a reason
	// other than the path being missing.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrFileOpenFailed is returned when a file cannot be opened for
	// fingerprinting.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when fingerprinting a file's content fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrDirectoryReadFailed is returned when listing a directory fails.
	ErrDirectoryReadFailed = zerr.New("failed to read directory")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrInvalidMaxHierarchies is returned when the configured maximum
	// number of watched hierarchies is not positive.
	ErrInvalidMaxHierarchies = zerr.New("maximum watched hierarchies must be at least 1")
)
