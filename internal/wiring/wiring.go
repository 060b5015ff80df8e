// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/scribibble/dpnd/internal/adapters/bom"
	_ "github.com/scribibble/dpnd/internal/adapters/config"
	_ "github.com/scribibble/dpnd/internal/adapters/fs"
	_ "github.com/scribibble/dpnd/internal/adapters/git"
	_ "github.com/scribibble/dpnd/internal/adapters/logger"
	// Register app nodes.
	_ "github.com/scribibble/dpnd/internal/app"
)
