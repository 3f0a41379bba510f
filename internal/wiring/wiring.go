// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/slink/internal/adapters/config"
	_ "go.trai.ch/slink/internal/adapters/logger"
	_ "go.trai.ch/slink/internal/adapters/menureg"
	_ "go.trai.ch/slink/internal/adapters/overrides"
	_ "go.trai.ch/slink/internal/adapters/pluginfs"
	_ "go.trai.ch/slink/internal/adapters/telemetry"
	_ "go.trai.ch/slink/internal/adapters/transient"
	_ "go.trai.ch/slink/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/slink/internal/app"
	_ "go.trai.ch/slink/internal/engine/inventory"
	_ "go.trai.ch/slink/internal/engine/menucache"
	_ "go.trai.ch/slink/internal/engine/resolver"
)
