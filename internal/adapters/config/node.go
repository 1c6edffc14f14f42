package config

import (
	"context"

	"github.com/grindlemire/graft"

	"shutbox/internal/core/ports"
)

// NodeID is the unique identifier for the descriptor loader Graft node.
const NodeID graft.ID = "adapter.descriptor_loader"

func init() {
	graft.Register(graft.Node[ports.DescriptorLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.DescriptorLoader, error) {
			return &FileDescriptorLoader{}, nil
		},
	})
}
