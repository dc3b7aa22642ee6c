// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/vfs/internal/adapters/config"
	_ "go.trai.ch/vfs/internal/adapters/fs"
	_ "go.trai.ch/vfs/internal/adapters/logger"
	_ "go.trai.ch/vfs/internal/adapters/telemetry"
	_ "go.trai.ch/vfs/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/vfs/internal/app"
	_ "go.trai.ch/vfs/internal/engine/vfs"
)
