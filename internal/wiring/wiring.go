// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.orqa.ch/estim/internal/adapters/config"
	_ "go.orqa.ch/estim/internal/adapters/logger"
	// Register app nodes.
	_ "go.orqa.ch/estim/internal/app"
)
