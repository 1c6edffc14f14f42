// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "shutbox/internal/adapters/config"
	_ "shutbox/internal/adapters/logger"
	_ "shutbox/internal/adapters/shellgen"
	// Register app nodes.
	_ "shutbox/internal/app"
)
