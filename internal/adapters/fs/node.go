package fs

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/scribibble/dpnd/internal/core/ports"
)

// NodeID is the unique identifier for the path resolver Graft node.
const NodeID graft.ID = "adapter.path_resolver"

func init() {
	graft.Register(graft.Node[ports.PathResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathResolver, error) {
			return NewResolver(), nil
		},
	})
}
