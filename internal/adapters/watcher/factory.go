package watcher

import (
	"runtime"

	"go.trai.ch/vfs/internal/core/domain"
	"go.trai.ch/vfs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileWatcherRegistryFactory = (*Factory)(nil)

// supportedPlatforms are the operating systems fsnotify can watch natively.
// Platform probing happens once per registry creation, not per call.
var supportedPlatforms = map[string]bool{
	"linux":     true,
	"darwin":    true,
	"windows":   true,
	"freebsd":   true,
	"netbsd":    true,
	"openbsd":   true,
	"dragonfly": true,
}

// Factory creates fsnotify-backed watch registries.
type Factory struct{}

// NewFactory creates a registry factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewRegistry probes the platform and creates a registry delivering events
// to the given handler.
func (f *Factory) NewRegistry(handler ports.ChangeHandler) (ports.FileWatcherRegistry, error) {
	if !supportedPlatforms[runtime.GOOS] {
		return nil, zerr.With(domain.ErrWatchingNotSupported, "os", runtime.GOOS)
	}
	return newRegistry(handler)
}
