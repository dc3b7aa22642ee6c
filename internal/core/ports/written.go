package ports

// WrittenLocations reports which paths the current build wrote itself.
// The virtual file system consults it read-only to tell self-inflicted
// changes (cache already updated at write time) apart from external ones
// (must invalidate).
//
//go:generate mockgen -source=written.go -destination=mocks/mock_written.go -package=mocks
type WrittenLocations interface {
	// WasLocationWritten reports whether the absolute path, or an ancestor
	// directory of it, was written by the current build.
	WasLocationWritten(path string) bool
}
