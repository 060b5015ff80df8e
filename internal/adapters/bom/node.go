package bom

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/scribibble/dpnd/internal/core/ports"
)

// NodeID is the unique identifier for the BOM store Graft node.
const NodeID graft.ID = "adapter.bom_store"

func init() {
	graft.Register(graft.Node[ports.BomStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BomStore, error) {
			return NewStore(), nil
		},
	})
}
