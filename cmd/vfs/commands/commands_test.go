package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vfs/cmd/vfs/commands"
	"go.trai.ch/vfs/internal/app"
	"go.trai.ch/vfs/internal/build"
)

type mockApp struct {
	watchFunc func(ctx context.Context, roots []string, opts app.WatchOptions) error
}

func (m *mockApp) Watch(ctx context.Context, roots []string, opts app.WatchOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, roots, opts)
	}
	return nil
}

func TestCommands_Watch(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.WatchOptions
		var capturedRoots []string
		called := false

		mock := &mockApp{
			watchFunc: func(_ context.Context, roots []string, opts app.WatchOptions) error {
				capturedOpts = opts
				capturedRoots = roots
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"watch", "/projects/app", "--verbose"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.True(t, capturedOpts.Verbose)
		assert.Equal(t, []string{"/projects/app"}, capturedRoots)
	})

	t.Run("roots are optional", func(t *testing.T) {
		var capturedRoots []string

		mock := &mockApp{
			watchFunc: func(_ context.Context, roots []string, _ app.WatchOptions) error {
				capturedRoots = roots
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"watch"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Empty(t, capturedRoots)
	})

	t.Run("returns error on watch failure", func(t *testing.T) {
		mock := &mockApp{
			watchFunc: func(_ context.Context, _ []string, _ app.WatchOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"watch"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
