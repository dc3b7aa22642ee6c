// Package config loads the watch settings from an optional vfs.yml file.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/vfs/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SettingsFileName is the name of the optional settings file.
const SettingsFileName = "vfs.yml"

// DefaultMaxWatchedHierarchies bounds how many hierarchies stay watched
// between builds.
const DefaultMaxWatchedHierarchies = 8

// Settings configure the watching virtual file system.
type Settings struct {
	// Watch enables file system watching.
	Watch bool `yaml:"watch"`
	// VerboseWatchLogging logs watch statistics at build boundaries.
	VerboseWatchLogging bool `yaml:"verbose_watch_logging"`
	// MaxWatchedHierarchies is the maximum number of hierarchies retained
	// as watched between builds.
	MaxWatchedHierarchies int `yaml:"max_watched_hierarchies"`
	// Roots are the hierarchies registered for every build.
	Roots []string `yaml:"roots"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() Settings {
	return Settings{
		Watch:                 true,
		MaxWatchedHierarchies: DefaultMaxWatchedHierarchies,
	}
}

// Loader reads settings from disk.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads vfs.yml from the given directory. A missing file yields the
// defaults.
func (l *Loader) Load(dir string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(filepath.Join(dir, SettingsFileName)) //nolint:gosec // Path is controlled by caller
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return Settings{}, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "directory", dir)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, zerr.With(zerr.Wrap(err, domain.ErrSettingsParseFailed.Error()), "directory", dir)
	}
	if settings.MaxWatchedHierarchies < 1 {
		return Settings{}, zerr.With(domain.ErrInvalidMaxHierarchies, "max", settings.MaxWatchedHierarchies)
	}
	return settings, nil
}
