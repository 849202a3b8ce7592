// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/freeze/internal/adapters/cas"
	_ "go.trai.ch/freeze/internal/adapters/config"
	_ "go.trai.ch/freeze/internal/adapters/console"
	_ "go.trai.ch/freeze/internal/adapters/fs"
	_ "go.trai.ch/freeze/internal/adapters/logger"
	_ "go.trai.ch/freeze/internal/adapters/python"
	_ "go.trai.ch/freeze/internal/adapters/shell"
	_ "go.trai.ch/freeze/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/freeze/internal/app"
	_ "go.trai.ch/freeze/internal/engine/pipeline"
)
