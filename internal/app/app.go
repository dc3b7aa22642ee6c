// Package app implements the application layer for the vfs engine.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/vfs/internal/adapters/config"
	"go.trai.ch/vfs/internal/core/ports"
	"go.trai.ch/vfs/internal/engine/vfs"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// verbosable is implemented by loggers that can switch to debug output.
type verbosable interface {
	SetVerbose(enable bool)
}

// App drives a watch session: one build lifecycle followed by live watching
// until the context is cancelled.
type App struct {
	vfs            ports.VirtualFileSystem
	written        *vfs.BuildWrittenLocations
	settingsLoader *config.Loader
	logger         ports.Logger
}

// New creates a new App instance.
func New(
	filesystem ports.VirtualFileSystem,
	written *vfs.BuildWrittenLocations,
	settingsLoader *config.Loader,
	log ports.Logger,
) *App {
	return &App{
		vfs:            filesystem,
		written:        written,
		settingsLoader: settingsLoader,
		logger:         log,
	}
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	// Verbose enables watch statistics logging and debug output.
	Verbose bool
}

// Watch runs a single build lifecycle over the given roots and then keeps
// watching, logging invalidations, until the context is cancelled.
func (a *App) Watch(ctx context.Context, roots []string, opts WatchOptions) error {
	settings, err := a.settingsLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load settings")
	}
	if opts.Verbose {
		if v, ok := a.logger.(verbosable); ok {
			v.SetVerbose(true)
		}
	}

	if len(roots) == 0 {
		roots = settings.Roots
	}
	if len(roots) == 0 {
		roots = []string{"."}
	}
	absolute := make([]string, len(roots))
	for i, root := range roots {
		abs, err := filepath.Abs(root)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve root"), "root", root)
		}
		absolute[i] = abs
	}

	verbose := opts.Verbose || settings.VerboseWatchLogging

	a.written.BuildStarted()
	a.vfs.AfterBuildStarted(settings.Watch, verbose)
	for _, root := range absolute {
		a.vfs.RegisterWatchableHierarchy(root)
	}

	// Prime the cache so invalidations have something to act on.
	g, _ := errgroup.WithContext(ctx)
	for _, root := range absolute {
		g.Go(func() error {
			_, err := a.vfs.ReadLocation(root)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		a.logger.Error(err)
	}

	a.vfs.BeforeBuildFinished(settings.Watch, verbose, settings.MaxWatchedHierarchies)

	counts := a.vfs.Root().Count()
	a.logger.Info(fmt.Sprintf(
		"Watching %d hierarchies (%d files, %d directories cached); interrupt to stop",
		len(absolute), counts.RegularFiles, counts.Directories,
	))

	<-ctx.Done()
	return a.vfs.Close()
}
