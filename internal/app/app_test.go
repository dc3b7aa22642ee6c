package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vfs/internal/adapters/config"
	"go.trai.ch/vfs/internal/app"
	"go.trai.ch/vfs/internal/core/domain"
	"go.trai.ch/vfs/internal/core/ports/mocks"
	"go.trai.ch/vfs/internal/engine/vfs"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T) (*app.App, *mocks.MockVirtualFileSystem) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockVFS := mocks.NewMockVirtualFileSystem(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	return app.New(mockVFS, vfs.NewBuildWrittenLocations(), config.NewLoader(), mockLogger), mockVFS
}

// cancelledContext returns a context that is already done, so Watch runs one
// build lifecycle and shuts down immediately.
func cancelledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func TestApp_Watch(t *testing.T) {
	t.Run("Runs One Build Lifecycle", func(t *testing.T) {
		application, mockVFS := newTestApp(t)
		root := t.TempDir()

		mockVFS.EXPECT().AfterBuildStarted(true, false)
		mockVFS.EXPECT().RegisterWatchableHierarchy(root)
		mockVFS.EXPECT().ReadLocation(root).
			Return(domain.Snapshot{Path: root, Kind: domain.KindDirectory}, nil)
		mockVFS.EXPECT().BeforeBuildFinished(true, false, config.DefaultMaxWatchedHierarchies)
		mockVFS.EXPECT().Root().Return(domain.EmptyHierarchy())
		mockVFS.EXPECT().Close().Return(nil)

		err := application.Watch(cancelledContext(), []string{root}, app.WatchOptions{})
		require.NoError(t, err)
	})

	t.Run("Defaults To Working Directory", func(t *testing.T) {
		application, mockVFS := newTestApp(t)
		cwd, err := filepath.Abs(".")
		require.NoError(t, err)

		mockVFS.EXPECT().AfterBuildStarted(true, false)
		mockVFS.EXPECT().RegisterWatchableHierarchy(cwd)
		mockVFS.EXPECT().ReadLocation(cwd).
			Return(domain.Snapshot{Path: cwd, Kind: domain.KindDirectory}, nil)
		mockVFS.EXPECT().BeforeBuildFinished(true, false, config.DefaultMaxWatchedHierarchies)
		mockVFS.EXPECT().Root().Return(domain.EmptyHierarchy())
		mockVFS.EXPECT().Close().Return(nil)

		err = application.Watch(cancelledContext(), nil, app.WatchOptions{})
		require.NoError(t, err)
	})

	t.Run("Verbose Enables Statistics Logging", func(t *testing.T) {
		application, mockVFS := newTestApp(t)
		root := t.TempDir()

		mockVFS.EXPECT().AfterBuildStarted(true, true)
		mockVFS.EXPECT().RegisterWatchableHierarchy(root)
		mockVFS.EXPECT().ReadLocation(root).
			Return(domain.Snapshot{Path: root, Kind: domain.KindDirectory}, nil)
		mockVFS.EXPECT().BeforeBuildFinished(true, true, config.DefaultMaxWatchedHierarchies)
		mockVFS.EXPECT().Root().Return(domain.EmptyHierarchy())
		mockVFS.EXPECT().Close().Return(nil)

		err := application.Watch(cancelledContext(), []string{root}, app.WatchOptions{Verbose: true})
		require.NoError(t, err)
	})

	t.Run("Priming Failure Does Not Abort The Session", func(t *testing.T) {
		application, mockVFS := newTestApp(t)
		root := t.TempDir()

		mockVFS.EXPECT().AfterBuildStarted(true, false)
		mockVFS.EXPECT().RegisterWatchableHierarchy(root)
		mockVFS.EXPECT().ReadLocation(root).
			Return(domain.Snapshot{}, domain.ErrPathStatFailed)
		mockVFS.EXPECT().BeforeBuildFinished(true, false, config.DefaultMaxWatchedHierarchies)
		mockVFS.EXPECT().Root().Return(domain.EmptyHierarchy())
		mockVFS.EXPECT().Close().Return(nil)

		err := application.Watch(cancelledContext(), []string{root}, app.WatchOptions{})
		assert.NoError(t, err)
	})
}
