// Package fs implements the snapshot producer that probes disk on hierarchy
// misses.
package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/vfs/internal/core/domain"
	"go.trai.ch/vfs/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.Snapshotter = (*Snapshotter)(nil)

// shouldSkipDirectories are directories that are never snapshotted.
var shouldSkipDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
}

// Snapshotter probes the file system and produces snapshots. Concurrent
// probes of the same path are collapsed into a single disk read.
type Snapshotter struct {
	group singleflight.Group
}

// NewSnapshotter creates a new Snapshotter.
func NewSnapshotter() *Snapshotter {
	return &Snapshotter{}
}

// Snapshot probes the given absolute path. A missing path yields a snapshot
// of kind KindMissing, not an error.
func (s *Snapshotter) Snapshot(path string) (domain.Snapshot, error) {
	path = filepath.Clean(path)
	snapshot, err, _ := s.group.Do(path, func() (any, error) {
		return s.probe(path)
	})
	if err != nil {
		return domain.Snapshot{}, err
	}
	return snapshot.(domain.Snapshot), nil
}

func (s *Snapshotter) probe(path string) (domain.Snapshot, error) {
	info, err := os.Lstat(path)
	switch {
	case os.IsNotExist(err):
		return domain.Snapshot{Path: path, Kind: domain.KindMissing}, nil
	case err != nil:
		return domain.Snapshot{}, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	case info.IsDir():
		return s.snapshotDirectory(path, info)
	default:
		return s.snapshotFile(path, info)
	}
}

func (s *Snapshotter) snapshotFile(path string, info os.FileInfo) (domain.Snapshot, error) {
	fingerprint, err := fingerprintFile(path)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return domain.Snapshot{
		Path:        path,
		Kind:        domain.KindRegularFile,
		Fingerprint: fingerprint,
		Size:        info.Size(),
		ModTime:     info.ModTime(),
	}, nil
}

func (s *Snapshotter) snapshotDirectory(path string, info os.FileInfo) (domain.Snapshot, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return domain.Snapshot{}, zerr.With(zerr.Wrap(err, domain.ErrDirectoryReadFailed.Error()), "path", path)
	}

	snapshot := domain.Snapshot{
		Path:    path,
		Kind:    domain.KindDirectory,
		ModTime: info.ModTime(),
	}
	for _, entry := range entries {
		if entry.IsDir() && shouldSkipDirectories[entry.Name()] {
			continue
		}
		child, err := s.probe(filepath.Join(path, entry.Name()))
		if err != nil {
			return domain.Snapshot{}, err
		}
		snapshot.Children = append(snapshot.Children, child)
	}
	return snapshot, nil
}

// fingerprintFile computes the xxhash of a file's content.
func fingerprintFile(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}
	return hasher.Sum64(), nil
}
