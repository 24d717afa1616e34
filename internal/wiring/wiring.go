// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/manage/internal/adapters/archive"
	_ "go.trai.ch/manage/internal/adapters/config"
	_ "go.trai.ch/manage/internal/adapters/download"
	_ "go.trai.ch/manage/internal/adapters/env"
	_ "go.trai.ch/manage/internal/adapters/fs"
	_ "go.trai.ch/manage/internal/adapters/logger"
	_ "go.trai.ch/manage/internal/adapters/shell"
	_ "go.trai.ch/manage/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/manage/internal/app"
	_ "go.trai.ch/manage/internal/engine/lifecycle"
)
