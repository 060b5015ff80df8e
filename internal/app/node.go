package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/scribibble/dpnd/internal/adapters/bom"
	"github.com/scribibble/dpnd/internal/adapters/config"
	"github.com/scribibble/dpnd/internal/adapters/fs"
	"github.com/scribibble/dpnd/internal/adapters/git"
	"github.com/scribibble/dpnd/internal/adapters/logger"
	"github.com/scribibble/dpnd/internal/core/ports"
)

// Components bundles the fully wired application.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			bom.NodeID,
			fs.NodeID,
			git.RunnerNodeID,
			config.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			store, err := graft.Dep[ports.BomStore](ctx)
			if err != nil {
				return nil, err
			}
			paths, err := graft.Dep[ports.PathResolver](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(store, paths, runner, configLoader, log),
				Logger: log,
			}, nil
		},
	})
}
