package app

import (
	"context"

	"github.com/grindlemire/graft"

	"shutbox/internal/adapters/config"
	"shutbox/internal/adapters/logger"
	"shutbox/internal/adapters/shellgen"
	"shutbox/internal/core/ports"
)

// NodeID is the unique identifier for the main App Graft node.
const NodeID graft.ID = "app.main"

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shellgen.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.DescriptorLoader](ctx)
			if err != nil {
				return nil, err
			}

			renderer, err := graft.Dep[ports.ShellRenderer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, renderer, log), nil
		},
	})
}
