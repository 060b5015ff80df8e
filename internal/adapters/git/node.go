package git

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/scribibble/dpnd/internal/adapters/logger"
	"github.com/scribibble/dpnd/internal/core/ports"
)

// RunnerNodeID is the unique identifier for the command runner Graft node.
const RunnerNodeID graft.ID = "adapter.runner"

func init() {
	graft.Register(graft.Node[ports.Runner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Runner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
